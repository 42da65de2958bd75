package catalog

import "errors"

var (
	ErrKnowledgeBaseRead  = errors.New("knowledge base could not be read")
	ErrKnowledgeBaseParse = errors.New("knowledge base could not be parsed")
	ErrUnsupportedFormat  = errors.New("unsupported knowledge base format")
)
