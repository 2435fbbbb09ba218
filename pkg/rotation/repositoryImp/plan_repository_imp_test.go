package repositoryImp

import (
	"path/filepath"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&entities.Plan{}))
	return db
}

func TestPlanListAndLatest(t *testing.T) {
	repo := New(testDB(t))
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"plan_a", "plan_b", "plan_c"} {
		require.NoError(t, repo.Create(&entities.Plan{
			PlanID: id, FieldID: "field_1", UserID: "u1",
			PlanningYears: 3, Source: "rag", PlanJSON: "{}",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repo.Create(&entities.Plan{
		PlanID: "plan_other", FieldID: "field_2", UserID: "u1",
		Source: "mock", PlanJSON: "{}", CreatedAt: base,
	}))

	list, err := repo.ListByField("field_1", "u1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	// newest first
	assert.Equal(t, "plan_c", list[0].PlanID)
	assert.Equal(t, "plan_a", list[2].PlanID)

	latest, err := repo.LatestByField("field_1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "plan_c", latest.PlanID)

	// wrong owner sees nothing
	none, err := repo.ListByField("field_1", "u2")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = repo.LatestByField("field_9", "u1")
	assert.Error(t, err)
}
