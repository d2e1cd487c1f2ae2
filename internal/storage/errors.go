package storage

import "codeberg.org/mvbarbosa/robodata/internal/errors"

const (
	// Configuration errors
	ErrInvalidDataDir = errors.ErrorCode("storage_invalid_data_dir")

	// Access errors
	ErrDocumentNotFound = errors.ErrorCode("storage_document_not_found")
	ErrDocumentDecode   = errors.ErrorCode("storage_document_decode_failed")
	ErrDocumentEncode   = errors.ErrorCode("storage_document_encode_failed")
	ErrStorageInit      = errors.ErrorCode("storage_init_failed")
	ErrStorageAccess    = errors.ErrorCode("storage_access_failed")
)
