package history_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/opsline/cutover/internal/history"
	mock_history "github.com/opsline/cutover/internal/mock/history"
)

func TestLedgerService(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockRepo := mock_history.NewMockRepo(ctrl)

	service := history.NewLedgerService(mockRepo)

	t.Run("gets all releases", func(st *testing.T) {
		expected := []*history.Release{
			{ID: "id1", Version: "1.2.3", Type: "patch", Branch: "main", Tag: "v1.2.3"},
			{ID: "id2", Version: "1.3.0", Type: "minor", Branch: "main", Tag: "v1.3.0"},
		}

		mockRepo.EXPECT().GetAllReleases().Return(expected, nil)

		found, err := service.GetAll()

		assert.NoError(st, err)
		assert.Equal(st, expected, found)
	})

	t.Run("gets release by version", func(st *testing.T) {
		expected := &history.Release{
			ID:      "id1",
			Version: "1.2.3",
			Type:    "patch",
			Branch:  "main",
			Tag:     "v1.2.3",
		}

		mockRepo.EXPECT().GetReleaseByVersion("1.2.3").Return(expected, nil)

		found, err := service.GetByVersion("1.2.3")

		assert.NoError(st, err)
		assert.Equal(st, expected, found)
	})

	t.Run("records release with generated id", func(st *testing.T) {
		mockRepo.EXPECT().
			AddRelease(gomock.Any()).
			DoAndReturn(func(r *history.Release) (*history.Release, error) {
				assert.NotEmpty(st, r.ID)
				assert.Equal(st, "1.3.0", r.Version)
				assert.Equal(st, "minor", r.Type)
				assert.Equal(st, "main", r.Branch)
				assert.Equal(st, "v1.3.0", r.Tag)
				assert.Equal(st, []string{"package.json", "README.md"}, r.Files)
				return r, nil
			})

		recorded, err := service.Record(
			"1.3.0",
			"minor",
			"main",
			"v1.3.0",
			[]string{"package.json", "README.md"},
		)

		assert.NoError(st, err)
		assert.Equal(st, "1.3.0", recorded.Version)
	})
}
