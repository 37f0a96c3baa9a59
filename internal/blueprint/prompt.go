package blueprint

// promptPrefix is prepended verbatim to every project idea.
const promptPrefix = "I want to build a dynamic website that: "

// SystemInstruction sets the architect persona for blueprint generation.
const SystemInstruction = `You are a world-class Full-Stack Web Architect.
Your goal is to provide a detailed technical blueprint for building a dynamic website based on a user's idea.
Analyze the requirements for frontend (React/Next), backend (Node/Go/Python), and database (SQL/NoSQL).
Ensure the response follows the exact JSON schema provided.`

// ChatInstruction sets the consultant persona for free-text advice.
const ChatInstruction = `You are an expert web development consultant.
Help the user understand how to build dynamic features like authentication, CRUD, real-time updates, and state management.
Keep answers technical but accessible.`

// ComposePrompt wraps a project idea into the generation prompt. The idea is
// included as given, without trimming or escaping.
func ComposePrompt(idea string) string {
	return promptPrefix + idea
}
