package domain

// Document is a rendered artifact fetched back from artifact storage.
type Document struct {
	Path     string
	FileName string
	Content  []byte
}
