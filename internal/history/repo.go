package history

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/spf13/viper"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/opsline/cutover/internal/exception"
)

// ReleaseModel database representation of a recorded release. The
// rewritten-file list is persisted as a JSON column.
type ReleaseModel struct {
	ID        string
	Version   string
	Type      string
	Branch    string
	Tag       string
	Files     datatypes.JSON
	CreatedAt time.Time
}

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a release repo backed by the given connection
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// NewSqliteDatabase returns a new cutover sqlite db
func NewSqliteDatabase() (*SqliteRepo, error) {
	filepath := viper.Get("database-file")

	dbFile, ok := filepath.(string)

	if !ok {
		return nil, errors.New("failed to find database file path config")
	}

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})

	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&ReleaseModel{}); err != nil {
		return nil, err
	}

	return &SqliteRepo{db: db}, nil
}

// GetAllReleases returns all recorded releases, newest first
func (r *SqliteRepo) GetAllReleases() ([]*Release, error) {
	models := []ReleaseModel{}

	if result := r.db.Order("created_at desc").Find(&models); result.Error != nil {
		return nil, result.Error
	}

	releases := []*Release{}

	for i := range models {
		release, err := modelToRelease(&models[i])

		if err != nil {
			return nil, err
		}

		releases = append(releases, release)
	}

	return releases, nil
}

// GetReleaseByVersion returns the recorded release for a version
func (r *SqliteRepo) GetReleaseByVersion(version string) (*Release, error) {
	model := ReleaseModel{}

	result := r.db.Where("version = ?", version).First(&model)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return modelToRelease(&model)
}

// AddRelease records a release
func (r *SqliteRepo) AddRelease(release *Release) (*Release, error) {
	if release.ID == "" {
		return nil, errors.New("release id cannot be empty")
	}

	model, err := releaseToModel(release)

	if err != nil {
		return nil, err
	}

	if result := r.db.Create(model); result.Error != nil {
		return nil, result.Error
	}

	return modelToRelease(model)
}

// helpers
func modelToRelease(model *ReleaseModel) (*Release, error) {
	files := []string{}

	if err := json.Unmarshal([]byte(model.Files.String()), &files); err != nil {
		return nil, err
	}

	return &Release{
		ID:        model.ID,
		Version:   model.Version,
		Type:      model.Type,
		Branch:    model.Branch,
		Tag:       model.Tag,
		Files:     files,
		CreatedAt: model.CreatedAt,
	}, nil
}

func releaseToModel(release *Release) (*ReleaseModel, error) {
	files := release.Files

	if files == nil {
		files = []string{}
	}

	filesBytes, err := json.Marshal(files)

	if err != nil {
		return nil, err
	}

	return &ReleaseModel{
		ID:        release.ID,
		Version:   release.Version,
		Type:      release.Type,
		Branch:    release.Branch,
		Tag:       release.Tag,
		Files:     datatypes.JSON(filesBytes),
		CreatedAt: release.CreatedAt,
	}, nil
}
