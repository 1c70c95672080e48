package repository

import (
	"context"
	"fmt"
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/linkstash/linkstash/bookmarks/models"
	"github.com/linkstash/linkstash/internal/testutil"
)

func seedTree(t *testing.T, suite *testutil.PostgresSuite) (workspaceID, spaceID, collectionID string) {
	t.Helper()

	ctx := context.Background()
	db := suite.Client.DB()
	workspaceID = uuid.Must(uuid.NewV4()).String()
	spaceID = uuid.Must(uuid.NewV4()).String()
	collectionID = uuid.Must(uuid.NewV4()).String()

	_, err := db.ExecContext(ctx, fmt.Sprintf("INSERT INTO %s.workspaces (id) VALUES ($1)", suite.Schema), workspaceID)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, fmt.Sprintf("INSERT INTO %s.spaces (id, workspace_id, name) VALUES ($1, $2, 'Work')", suite.Schema), spaceID, workspaceID)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, fmt.Sprintf("INSERT INTO %s.collections (id, space_id, name) VALUES ($1, $2, 'Reading')", suite.Schema), collectionID, spaceID)
	require.NoError(t, err)

	return workspaceID, spaceID, collectionID
}

func newBookmark(collectionID, title string, orderIndex int) *models.Bookmark {
	return &models.Bookmark{
		ID:           uuid.Must(uuid.NewV4()).String(),
		CollectionID: collectionID,
		Title:        title,
		URL:          "https://example.com/" + title,
		Tags:         pq.StringArray{},
		OrderIndex:   orderIndex,
	}
}

func TestPostgresRepository_Integration(t *testing.T) {
	if !testutil.ShouldRunDatabaseTests() {
		t.Skip("set RUN_DB_TESTS=1 to run database tests")
	}

	suite := testutil.SetupPostgres(t)
	repo := NewPostgresRepositoryWithSchema(suite.Client, suite.Schema)
	ctx := context.Background()

	_, spaceID, collectionID := seedTree(t, suite)

	t.Run("create and read back round trip", func(t *testing.T) {
		bookmark := newBookmark(collectionID, "go-blog", 0)
		bookmark.Tags = pq.StringArray{"go", "reading"}
		bookmark.Preview = models.Preview{Title: "The Go Blog", Image: "https://go.dev/og.png"}
		bookmark.IsPinned = true

		require.NoError(t, repo.Create(ctx, bookmark))

		found, err := repo.FindByID(ctx, bookmark.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Equal(t, bookmark.Title, found.Title)
		require.Equal(t, pq.StringArray{"go", "reading"}, found.Tags)
		require.Equal(t, "The Go Blog", found.Preview.Title)
		require.True(t, found.IsPinned)

		deleted, err := repo.Delete(ctx, bookmark.ID)
		require.NoError(t, err)
		require.True(t, deleted)
	})

	t.Run("missing bookmark reads as nil", func(t *testing.T) {
		found, err := repo.FindByID(ctx, uuid.Must(uuid.NewV4()).String())
		require.NoError(t, err)
		require.Nil(t, found)
	})

	t.Run("reorder rewrites indexes as a permutation", func(t *testing.T) {
		a := newBookmark(collectionID, "a", 0)
		b := newBookmark(collectionID, "b", 1)
		c := newBookmark(collectionID, "c", 2)
		for _, bm := range []*models.Bookmark{a, b, c} {
			require.NoError(t, repo.Create(ctx, bm))
		}

		require.NoError(t, repo.Reorder(ctx, collectionID, []string{c.ID, a.ID, b.ID}))

		ordered, err := repo.Find(ctx, ListFilter{CollectionID: collectionID})
		require.NoError(t, err)
		require.Len(t, ordered, 3)
		require.Equal(t, []string{c.ID, a.ID, b.ID}, []string{ordered[0].ID, ordered[1].ID, ordered[2].ID})
		for i, bm := range ordered {
			require.Equal(t, i, bm.OrderIndex)
		}

		t.Run("foreign ids are rejected without mutation", func(t *testing.T) {
			err := repo.Reorder(ctx, collectionID, []string{a.ID, uuid.Must(uuid.NewV4()).String()})
			require.ErrorIs(t, err, ErrForeignBookmarks)

			after, err := repo.Find(ctx, ListFilter{CollectionID: collectionID})
			require.NoError(t, err)
			require.Equal(t, []string{c.ID, a.ID, b.ID}, []string{after[0].ID, after[1].ID, after[2].ID})
		})

		for _, bm := range []*models.Bookmark{a, b, c} {
			_, err := repo.Delete(ctx, bm.ID)
			require.NoError(t, err)
		}
	})

	t.Run("search matches title, description and url", func(t *testing.T) {
		bm := newBookmark(collectionID, "search-target", 0)
		bm.Description = "weekly golang digest"
		require.NoError(t, repo.Create(ctx, bm))

		byDescription, err := repo.Search(ctx, "golang dig")
		require.NoError(t, err)
		require.Len(t, byDescription, 1)

		byURL, err := repo.Search(ctx, "example.com/search")
		require.NoError(t, err)
		require.Len(t, byURL, 1)

		none, err := repo.Search(ctx, "no-such-bookmark")
		require.NoError(t, err)
		require.Empty(t, none)

		_, err = repo.Delete(ctx, bm.ID)
		require.NoError(t, err)
	})

	t.Run("find by space joins through collections", func(t *testing.T) {
		bm := newBookmark(collectionID, "space-scoped", 0)
		require.NoError(t, repo.Create(ctx, bm))

		bySpace, err := repo.Find(ctx, ListFilter{SpaceID: spaceID})
		require.NoError(t, err)
		require.Len(t, bySpace, 1)
		require.Equal(t, bm.ID, bySpace[0].ID)

		_, err = repo.Delete(ctx, bm.ID)
		require.NoError(t, err)
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		bm := newBookmark(collectionID, "before", 4)
		require.NoError(t, repo.Create(ctx, bm))

		title := "after"
		updated, err := repo.Update(ctx, bm.ID, &models.UpdateBookmarkRequest{Title: &title})
		require.NoError(t, err)
		require.Equal(t, "after", updated.Title)
		require.Equal(t, bm.URL, updated.URL)
		require.Equal(t, 4, updated.OrderIndex)

		_, err = repo.Delete(ctx, bm.ID)
		require.NoError(t, err)
	})
}
