package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	DriverMongo  = "mongo"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

const (
	MimeImage = "image/"
	MimeSVG   = "image/svg+xml"
)

// Cache keys of the populated list endpoints.
const (
	CacheKeyPastas   = "list:pastas"
	CacheKeyProvas   = "list:provas"
	CacheKeyQuestoes = "list:questoes"

	CacheKeyConhecimentos = "list:conhecimentos"
)

var AllowedImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}
