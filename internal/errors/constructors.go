package errors

// Convenience functions for common error patterns

// Config errors

func ConfigUnreadable(path string, cause error) *NodeDocsError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file could not be loaded").
		WithContext("path", path)
}

// Input errors

func InputUnreadable(path string, cause error) *NodeDocsError {
	return Wrap(cause, CategoryInput, SeverityFatal, "node document could not be read").
		WithContext("path", path)
}

func InputMalformed(path string, cause error) *NodeDocsError {
	return Wrap(cause, CategoryInput, SeverityFatal, "node document is malformed").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *NodeDocsError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

func FilenameCollision(fileName string, names []string) *NodeDocsError {
	return New(CategoryValidation, SeverityFatal, "several nodes derive the same file name").
		WithContext("file", fileName).
		WithContext("nodes", names)
}

// Output errors

func OutputDirError(dir string, cause error) *NodeDocsError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output directory could not be created").
		WithContext("dir", dir)
}

func WriteFailed(fileName string, cause error) *NodeDocsError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "page write failed").
		WithContext("file", fileName)
}

// Internal errors

func InternalError(message string, cause error) *NodeDocsError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
