package driven

// LanguageDetector tags text with an ISO language code.
//
// Detection is a best-effort heuristic. Implementations return "unknown"
// (domain.LangUnknown) when the result is inconclusive; they never fail.
type LanguageDetector interface {
	Detect(text string) string
}
