package service

import "strings"

// domainTerms is the fixed vocabulary for the degraded-mode relevance check.
// Matching is deliberately lenient: this path only runs when the generative
// service is unavailable.
var domainTerms = map[string]struct{}{
	"javascript": {}, "java": {}, "python": {}, "typescript": {}, "go": {},
	"php": {}, "ruby": {}, "kotlin": {}, "swift": {}, "rust": {}, "sql": {},
	"react": {}, "angular": {}, "vue": {}, "node": {}, "express": {},
	"django": {}, "spring": {}, "flask": {}, "laravel": {}, "html": {},
	"css": {}, "sass": {}, "docker": {}, "kubernetes": {}, "aws": {},
	"azure": {}, "gcp": {}, "firebase": {}, "mongodb": {}, "mysql": {},
	"postgresql": {}, "redis": {}, "graphql": {}, "rest": {}, "api": {},
	"git": {}, "linux": {}, "bash": {}, "http": {}, "json": {},
	"database": {}, "index": {}, "cache": {}, "queue": {}, "thread": {},
	"async": {}, "promise": {}, "callback": {}, "closure": {}, "class": {},
	"interface": {}, "function": {}, "variable": {}, "array": {}, "object": {},
	"algorithm": {}, "recursion": {}, "pointer": {}, "memory": {},
	"testing": {}, "middleware": {}, "component": {}, "state": {},
	"props": {}, "hook": {}, "dom": {}, "event": {}, "server": {},
	"client": {}, "framework": {}, "library": {}, "microservice": {},
}

// heuristicCorrect classifies an answer without the generative service:
// correct when it mentions at least one domain term or contains at least
// three tokens longer than three characters. Deterministic for a fixed input.
func heuristicCorrect(answer string) bool {
	tokens := strings.Fields(strings.ToLower(answer))
	domainMatches := 0
	longTokens := 0
	for _, token := range tokens {
		token = strings.Trim(token, ".,;:!?()[]{}\"'`")
		if token == "" {
			continue
		}
		if _, ok := domainTerms[token]; ok {
			domainMatches++
		}
		if len(token) > 3 {
			longTokens++
		}
	}
	return domainMatches >= 1 || longTokens >= 3
}
