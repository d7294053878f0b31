package imports

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ModuleEntry maps a module path to its allowed importable items.
type ModuleEntry struct {
	Module string   `yaml:"module"`
	Items  []string `yaml:"items"`
}

// DeprecatedEntry maps a deprecated module path prefix to its
// suggested replacement.
type DeprecatedEntry struct {
	Prefix     string `yaml:"prefix"`
	Suggestion string `yaml:"suggestion"`
}

// Tables holds the lookup data the resolver checks against. Both lists
// are ordered: deprecated-prefix matching is first-match-wins, so the
// deprecated table is an explicit slice rather than a map to keep that
// behavior well-defined.
type Tables struct {
	Valid      []ModuleEntry     `yaml:"valid"`
	Deprecated []DeprecatedEntry `yaml:"deprecated"`
}

// LoadTables loads lookup tables from a YAML file, preserving entry
// order.
func LoadTables(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read tables file: %w", err)
	}
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("parse tables file %s: %w", path, err)
	}
	return t, nil
}

// DefaultTables returns the built-in LangChain/LangGraph import tables
// (2025 architecture).
func DefaultTables() Tables {
	return Tables{
		Valid: []ModuleEntry{
			// Core
			{Module: "langchain_core.prompts", Items: []string{"ChatPromptTemplate", "PromptTemplate", "MessagesPlaceholder"}},
			{Module: "langchain_core.output_parsers", Items: []string{"StrOutputParser", "JsonOutputParser", "PydanticOutputParser"}},
			{Module: "langchain_core.runnables", Items: []string{"RunnablePassthrough", "RunnableParallel", "RunnableLambda", "RunnableBranch", "Runnable"}},
			{Module: "langchain_core.messages", Items: []string{"HumanMessage", "AIMessage", "SystemMessage", "ToolMessage", "AnyMessage"}},
			{Module: "langchain_core.tools", Items: []string{"tool", "Tool", "StructuredTool"}},
			{Module: "langchain_core.vectorstores", Items: []string{"InMemoryVectorStore", "VectorStore"}},
			{Module: "langchain_core.documents", Items: []string{"Document"}},

			// Chat models
			{Module: "langchain_openai", Items: []string{"ChatOpenAI", "OpenAIEmbeddings", "OpenAI"}},
			{Module: "langchain_anthropic", Items: []string{"ChatAnthropic"}},
			{Module: "langchain_google_genai", Items: []string{"ChatGoogleGenerativeAI"}},

			// Community
			{Module: "langchain_community.document_loaders", Items: []string{"WebBaseLoader", "PyPDFLoader", "DirectoryLoader", "TextLoader", "CSVLoader"}},
			{Module: "langchain_community.vectorstores", Items: []string{"FAISS", "Chroma", "Pinecone", "Qdrant", "Weaviate", "PGVector"}},
			{Module: "langchain_community.embeddings", Items: []string{"HuggingFaceEmbeddings"}},

			// Text splitters
			{Module: "langchain_text_splitters", Items: []string{"RecursiveCharacterTextSplitter", "CharacterTextSplitter", "TokenTextSplitter"}},

			// LangGraph
			{Module: "langgraph.graph", Items: []string{"StateGraph", "START", "END", "MessagesState"}},
			{Module: "langgraph.graph.message", Items: []string{"add_messages"}},
			{Module: "langgraph.checkpoint.memory", Items: []string{"InMemorySaver", "MemorySaver"}},
			{Module: "langgraph.checkpoint.sqlite", Items: []string{"SqliteSaver"}},
			{Module: "langgraph.checkpoint.postgres", Items: []string{"PostgresSaver"}},
			{Module: "langgraph.prebuilt", Items: []string{"create_react_agent", "ToolNode"}},

			// LangChain agents (new style)
			{Module: "langchain.agents", Items: []string{"create_agent", "AgentExecutor"}},
			{Module: "langchain.tools", Items: []string{"tool", "Tool"}},
			{Module: "langchain.chat_models", Items: []string{"init_chat_model"}},
			{Module: "langchain.messages", Items: []string{"HumanMessage", "AIMessage", "SystemMessage", "ToolMessage", "AnyMessage"}},
		},
		Deprecated: []DeprecatedEntry{
			{Prefix: "langchain.prompts", Suggestion: "Use langchain_core.prompts instead"},
			{Prefix: "langchain.schema", Suggestion: "Use langchain_core.messages instead"},
			{Prefix: "langchain.llms", Suggestion: "Use langchain_openai or langchain_anthropic instead"},
			{Prefix: "langchain.embeddings", Suggestion: "Use langchain_openai.OpenAIEmbeddings or langchain_community.embeddings"},
			{Prefix: "langchain.vectorstores", Suggestion: "Use langchain_community.vectorstores or langchain_core.vectorstores"},
			{Prefix: "langchain.document_loaders", Suggestion: "Use langchain_community.document_loaders"},
			{Prefix: "langchain.text_splitter", Suggestion: "Use langchain_text_splitters"},
			{Prefix: "langchain.chains", Suggestion: "Use LCEL (langchain_core.runnables) instead"},
			{Prefix: "langchain.memory", Suggestion: "Use LangGraph checkpointers instead"},
		},
	}
}
