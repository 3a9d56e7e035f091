package module

// Built-in module ids, their placeholder markers and their deployed URLs.
const (
	InterviewerID = "interviewer"
	AnalyzerID    = "analyzer"

	// a URL containing its module's marker was never filled in
	InterviewerPlaceholder = "YOUR_DEPLOYED_CHATBOT_APP_URL_HERE"
	AnalyzerPlaceholder    = "YOUR_DEPLOYED_RAG_UI_APP_URL_HERE"

	DefaultInterviewerURL = "https://viab-interviewer.streamlit.app/"
	DefaultAnalyzerURL    = "https://viab-insights.streamlit.app/"
)

// Interviewer returns the design interviewer module with its built-in copy.
func Interviewer() Module {
	return Module{
		ID:    InterviewerID,
		Title: "AI Design Interviewer",
		Icon:  "🎨",
		Summary: "Start your design journey with a guided conversational interview. " +
			"This AI assistant helps articulate your vision, define project needs, " +
			"and analyze reference images.",
		Output:      "A structured <code>conversation.json</code> brief for detailed analysis.",
		Label:       "Launch Interviewer",
		URL:         DefaultInterviewerURL,
		Placeholder: InterviewerPlaceholder,
		Warning:     "Chatbot Interviewer URL not configured.",
	}
}

// Analyzer returns the standards analyzer module with its built-in copy.
func Analyzer() Module {
	return Module{
		ID:    AnalyzerID,
		Title: "RAG Standards Analyzer",
		Icon:  "🛠️",
		Summary: "Upload your <code>conversation.json</code> brief here. This module leverages " +
			"Retrieval Augmented Generation (RAG) against a knowledge base of architectural standards.",
		Output:      "Detailed analysis, numerical standards, preliminary BOQs, and design considerations.",
		Label:       "Launch Analyzer",
		URL:         DefaultAnalyzerURL,
		Placeholder: AnalyzerPlaceholder,
		Warning:     "RAG Analyzer URL not configured.",
	}
}

// Defaults returns the built-in modules in display order.
func Defaults() []Module {
	return []Module{Interviewer(), Analyzer()}
}
