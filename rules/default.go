package rules

// Default returns the built-in catalog covering LangGraph state
// anti-patterns, deprecated LangChain APIs, RAG pitfalls, and general
// code-sample quality.
func Default() *Catalog {
	return MustNewCatalog(defaultRules)
}

var defaultRules = []Rule{
	// LangGraph rules
	{
		ID:             "langgraph/typeddict-state",
		Pattern:        `class\s+\w+\(BaseModel\):`,
		ContextPattern: `(State|state|graph|Graph|langgraph)`,
		Message:        "LangGraph state must use TypedDict, not Pydantic BaseModel",
		Severity:       SeverityError,
		Suggestion:     "Change to: class State(TypedDict):",
	},
	{
		ID:              "langgraph/missing-reducer",
		Pattern:         `messages:\s*list\[`,
		NegativePattern: `messages:\s*Annotated\[list\[`,
		ContextPattern:  `(TypedDict|State)`,
		Message:         "List fields in state need Annotated with a reducer or they'll be replaced",
		Severity:        SeverityError,
		Suggestion:      "Use: messages: Annotated[list[AnyMessage], add_messages]",
	},
	{
		ID:         "langgraph/wrong-recursion-limit",
		Pattern:    `["']configurable["']\s*:\s*\{[^}]*["']recursion_limit["']`,
		Message:    "recursion_limit should be a top-level config key, not inside configurable",
		Severity:   SeverityError,
		Suggestion: `Use: graph.invoke(inputs, {"recursion_limit": 50})`,
	},

	// Deprecated imports
	{
		ID:         "deprecated/langchain-agents",
		Pattern:    `from\s+langchain\.agents\s+import\s+AgentExecutor`,
		Message:    "AgentExecutor is deprecated, use LangGraph agents instead",
		Severity:   SeverityWarning,
		Suggestion: "Use create_agent from langchain.agents or build with StateGraph",
	},
	{
		ID:         "deprecated/old-react-agent",
		Pattern:    `from\s+langchain\.agents\s+import\s+create_react_agent`,
		Message:    "create_react_agent is the old pattern, use create_agent instead",
		Severity:   SeverityWarning,
		Suggestion: "Use: from langchain.agents import create_agent",
	},

	// RAG rules
	{
		ID:              "rag/faiss-deserialization",
		Pattern:         `FAISS\.load_local\([^)]+\)`,
		NegativePattern: `allow_dangerous_deserialization\s*=\s*True`,
		Message:         "FAISS.load_local requires allow_dangerous_deserialization=True",
		Severity:        SeverityError,
		Suggestion:      "Add: allow_dangerous_deserialization=True",
	},
	{
		ID:              "rag/missing-chunk-overlap",
		Pattern:         `RecursiveCharacterTextSplitter\([^)]*chunk_size`,
		NegativePattern: `chunk_overlap`,
		Message:         "Text splitter should include chunk_overlap to prevent context loss",
		Severity:        SeverityWarning,
		Suggestion:      "Add: chunk_overlap=200",
	},

	// General code quality
	{
		ID:       "code/placeholder-todo",
		Pattern:  `#\s*(TODO|FIXME|XXX|HACK)`,
		Message:  "Code contains TODO/FIXME placeholder",
		Severity: SeverityWarning,
	},
	{
		ID:       "code/ellipsis-placeholder",
		Pattern:  `^\s*\.\.\.\s*$`,
		Message:  "Code contains ... placeholder - examples should be complete",
		Severity: SeverityWarning,
	},
	{
		ID:       "code/pass-placeholder",
		Pattern:  `^\s*pass\s*#`,
		Message:  "Code contains pass with comment - likely placeholder",
		Severity: SeverityWarning,
	},
}
