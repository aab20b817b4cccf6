package service

import (
	"embed"
	"encoding/json"
	"log"
	"math/rand"
	"sort"
	"strings"
	"sync"
)

//go:embed datasets/*.json
var datasetFS embed.FS

const actualQuestionCount = 5

type datasetQuestion struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Type     string   `json:"type"`
	Topics   []string `json:"topics"`
}

var (
	datasetOnce  sync.Once
	datasetCache map[string][]datasetQuestion
)

func loadDatasets() map[string][]datasetQuestion {
	datasetOnce.Do(func() {
		datasetCache = make(map[string][]datasetQuestion)
		for _, name := range []string{"dataset_frontend", "dataset_backend", "dataset_fullstack"} {
			data, err := datasetFS.ReadFile("datasets/" + name + ".json")
			if err != nil {
				log.Printf("Failed to read embedded dataset %s: %v", name, err)
				continue
			}
			var questions []datasetQuestion
			if err := json.Unmarshal(data, &questions); err != nil {
				log.Printf("Failed to parse embedded dataset %s: %v", name, err)
				continue
			}
			datasetCache[name] = questions
		}
	})
	return datasetCache
}

func pickDataset(role string) []datasetQuestion {
	datasets := loadDatasets()
	r := strings.ToLower(role)
	switch {
	case strings.Contains(r, "fullstack"):
		return datasets["dataset_fullstack"]
	case strings.Contains(r, "front"):
		return datasets["dataset_frontend"]
	case strings.Contains(r, "back"):
		return datasets["dataset_backend"]
	default:
		return datasets["dataset_fullstack"]
	}
}

// sampleDatasetQuestions filters a role's dataset by topic and randomly
// samples up to count questions. When the topic filter leaves too few, the
// whole dataset becomes the pool.
func sampleDatasetQuestions(role string, topics []string, count int) []QuestionInput {
	dataset := pickDataset(role)

	topicSet := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		topicSet[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}

	var filtered []datasetQuestion
	for _, q := range dataset {
		for _, topic := range q.Topics {
			if _, ok := topicSet[strings.ToLower(topic)]; ok {
				filtered = append(filtered, q)
				break
			}
		}
	}

	pool := filtered
	if len(pool) < count {
		pool = dataset
	}

	shuffled := append([]datasetQuestion(nil), pool...)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if len(shuffled) > count {
		shuffled = shuffled[:count]
	}

	inputs := make([]QuestionInput, 0, len(shuffled))
	for _, q := range shuffled {
		questionType := q.Type
		if questionType == "" {
			questionType = "technical"
		}
		inputs = append(inputs, QuestionInput{Question: q.Question, Answer: q.Answer, Type: questionType})
	}
	return inputs
}

// AvailableTopics lists every topic across the embedded datasets, sorted.
func AvailableTopics() []string {
	seen := make(map[string]struct{})
	for _, dataset := range loadDatasets() {
		for _, q := range dataset {
			for _, topic := range q.Topics {
				seen[topic] = struct{}{}
			}
		}
	}
	topics := make([]string, 0, len(seen))
	for t := range seen {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}
