// Package ports declares the narrow collaborator interfaces the doctor
// consumes. Each check receives exactly the capabilities it needs through
// the pass context; implementations live elsewhere and are injected.
package ports

//go:generate mockgen -destination=../mocks/mock_config.go -package=mocks sitedoctor/internal/doctor/ports Config
//go:generate mockgen -destination=../mocks/mock_fs.go -package=mocks sitedoctor/internal/doctor/ports FilesystemProbe
//go:generate mockgen -destination=../mocks/mock_rows.go -package=mocks sitedoctor/internal/doctor/ports RowCounter
//go:generate mockgen -destination=../mocks/mock_identity.go -package=mocks sitedoctor/internal/doctor/ports Identity
//go:generate mockgen -destination=../mocks/mock_capabilities.go -package=mocks sitedoctor/internal/doctor/ports Capabilities
