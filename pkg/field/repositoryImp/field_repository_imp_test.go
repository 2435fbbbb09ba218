package repositoryImp

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/UmashankarGouda/KrishiChakra/entities"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.FieldBatch{}))
	return db
}

func TestFieldCRUD(t *testing.T) {
	repo := New(testDB(t))

	f := &entities.FieldBatch{
		ID: "field_1", UserID: "u1", Name: "North plot",
		Location: "Nagpur", SoilType: "black", Size: 2.5, Status: "planning",
	}
	require.NoError(t, repo.Create(f))

	got, err := repo.FindByID("field_1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "North plot", got.Name)

	got.Status = "active"
	got.CurrentCrop = "Cotton"
	require.NoError(t, repo.Save(got))

	again, err := repo.FindByID("field_1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "active", again.Status)
	assert.Equal(t, "Cotton", again.CurrentCrop)

	require.NoError(t, repo.Delete("field_1", "u1"))
	_, err = repo.FindByID("field_1", "u1")
	assert.Error(t, err)
}

func TestFieldOwnershipScoping(t *testing.T) {
	repo := New(testDB(t))

	require.NoError(t, repo.Create(&entities.FieldBatch{ID: "field_1", UserID: "u1", Name: "mine", Size: 1}))
	require.NoError(t, repo.Create(&entities.FieldBatch{ID: "field_2", UserID: "u2", Name: "theirs", Size: 1}))

	_, err := repo.FindByID("field_2", "u1")
	assert.Error(t, err)

	list, err := repo.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "field_1", list[0].ID)

	// deleting with the wrong owner is a no-op
	require.NoError(t, repo.Delete("field_2", "u1"))
	still, err := repo.FindByID("field_2", "u2")
	require.NoError(t, err)
	assert.Equal(t, "theirs", still.Name)
}
