package database_test

import (
	"os"
	"sync"
	"testing"

	"github.com/mdouchement/checklist/internal/database"
	"github.com/mdouchement/checklist/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (database.Client, func()) {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "checklist.*.db")
	require.NoError(t, err)
	filename := tmpfile.Name()
	tmpfile.Close()

	db, err := database.StormOpen(filename)
	require.NoError(t, err)

	return db, func() {
		db.Close()
		os.RemoveAll(filename)
	}
}

func TestUserUniqueness(t *testing.T) {
	db, cleanup := setup(t)
	defer cleanup()

	user := &model.User{
		Username: "alice",
		Email:    "a@x.com",
		Password: "hash",
	}
	require.NoError(t, db.Save(user))
	assert.NotZero(t, user.ID)

	duplicate := &model.User{
		Username: "alice",
		Email:    "other@x.com",
		Password: "hash",
	}
	err := db.Save(duplicate)
	require.Error(t, err)
	assert.True(t, db.IsAlreadyExists(err))

	// The first record is unaffected.
	found, err := db.FindUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "a@x.com", found.Email)

	duplicate = &model.User{
		Username: "bob",
		Email:    "a@x.com",
		Password: "hash",
	}
	err = db.Save(duplicate)
	require.Error(t, err)
	assert.True(t, db.IsAlreadyExists(err))
}

func TestFindUserByUsername(t *testing.T) {
	db, cleanup := setup(t)
	defer cleanup()

	_, err := db.FindUserByUsername("nobody")
	require.Error(t, err)
	assert.True(t, db.IsNotFound(err))

	require.NoError(t, db.Save(&model.User{Username: "alice", Email: "a@x.com"}))

	user, err := db.FindUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	user, err = db.FindUserByMail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestChecklistCRUD(t *testing.T) {
	db, cleanup := setup(t)
	defer cleanup()

	checklists, err := db.FindChecklists()
	require.NoError(t, err)
	assert.Empty(t, checklists)

	checklist := &model.Checklist{Name: "Groceries"}
	require.NoError(t, db.Save(checklist))
	assert.Equal(t, 1, checklist.ID)
	assert.NotNil(t, checklist.CreatedAt)

	checklists, err = db.FindChecklists()
	require.NoError(t, err)
	require.Len(t, checklists, 1)
	assert.Equal(t, "Groceries", checklists[0].Name)

	deleted, err := db.DeleteChecklist(checklist.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", deleted.Name)

	_, err = db.FindChecklist(checklist.ID)
	assert.True(t, db.IsNotFound(err))

	_, err = db.DeleteChecklist(checklist.ID)
	require.Error(t, err)
	assert.True(t, db.IsNotFound(err))
}

func TestCreateItem(t *testing.T) {
	db, cleanup := setup(t)
	defer cleanup()

	_, err := db.CreateItem(42, "Milk")
	require.Error(t, err)
	assert.True(t, db.IsNotFound(err))

	checklist := &model.Checklist{Name: "Groceries"}
	require.NoError(t, db.Save(checklist))

	item, err := db.CreateItem(checklist.ID, "Milk")
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, checklist.ID, item.ChecklistID)
	assert.False(t, item.Status)
}

func TestItemCompoundScoping(t *testing.T) {
	db, cleanup := setup(t)
	defer cleanup()

	one := &model.Checklist{Name: "One"}
	require.NoError(t, db.Save(one))
	two := &model.Checklist{Name: "Two"}
	require.NoError(t, db.Save(two))

	item, err := db.CreateItem(one.ID, "Milk")
	require.NoError(t, err)

	// The item id alone is not sufficient to address it.
	_, err = db.FindItem(two.ID, item.ID)
	require.Error(t, err)
	assert.True(t, db.IsNotFound(err))

	_, err = db.ToggleItemStatus(two.ID, item.ID)
	assert.True(t, db.IsNotFound(err))

	_, err = db.RenameItem(two.ID, item.ID, "Bread")
	assert.True(t, db.IsNotFound(err))

	_, err = db.DeleteItem(two.ID, item.ID)
	assert.True(t, db.IsNotFound(err))

	// Still reachable through its own checklist.
	found, err := db.FindItem(one.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk", found.ItemName)
	assert.False(t, found.Status)
}

func TestToggleItemStatus(t *testing.T) {
	db, cleanup := setup(t)
	defer cleanup()

	checklist := &model.Checklist{Name: "Groceries"}
	require.NoError(t, db.Save(checklist))
	item, err := db.CreateItem(checklist.ID, "Milk")
	require.NoError(t, err)

	toggled, err := db.ToggleItemStatus(checklist.ID, item.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Status)

	// Two toggles in sequence return the item to its original state.
	toggled, err = db.ToggleItemStatus(checklist.ID, item.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Status)
}

func TestToggleItemStatusConcurrency(t *testing.T) {
	db, cleanup := setup(t)
	defer cleanup()

	checklist := &model.Checklist{Name: "Groceries"}
	require.NoError(t, db.Save(checklist))
	item, err := db.CreateItem(checklist.ID, "Milk")
	require.NoError(t, err)

	const n = 9

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()

			_, err := db.ToggleItemStatus(checklist.ID, item.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// No lost update: final status is initial XOR (n mod 2).
	found, err := db.FindItem(checklist.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, n%2 == 1, found.Status)
}

func TestRenameItem(t *testing.T) {
	db, cleanup := setup(t)
	defer cleanup()

	checklist := &model.Checklist{Name: "Groceries"}
	require.NoError(t, db.Save(checklist))
	item, err := db.CreateItem(checklist.ID, "Milk")
	require.NoError(t, err)

	renamed, err := db.RenameItem(checklist.ID, item.ID, "Oat milk")
	require.NoError(t, err)
	assert.Equal(t, "Oat milk", renamed.ItemName)
	assert.False(t, renamed.Status)

	found, err := db.FindItem(checklist.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oat milk", found.ItemName)
}

func TestDeleteItem(t *testing.T) {
	db, cleanup := setup(t)
	defer cleanup()

	checklist := &model.Checklist{Name: "Groceries"}
	require.NoError(t, db.Save(checklist))
	item, err := db.CreateItem(checklist.ID, "Milk")
	require.NoError(t, err)

	deleted, err := db.DeleteItem(checklist.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk", deleted.ItemName)

	_, err = db.FindItem(checklist.ID, item.ID)
	assert.True(t, db.IsNotFound(err))

	_, err = db.DeleteItem(checklist.ID, item.ID)
	require.Error(t, err)
	assert.True(t, db.IsNotFound(err))
}

func TestDeleteChecklistKeepsItems(t *testing.T) {
	db, cleanup := setup(t)
	defer cleanup()

	checklist := &model.Checklist{Name: "Groceries"}
	require.NoError(t, db.Save(checklist))
	item, err := db.CreateItem(checklist.ID, "Milk")
	require.NoError(t, err)

	_, err = db.DeleteChecklist(checklist.ID)
	require.NoError(t, err)

	// No cascade: the orphaned item remains addressable.
	found, err := db.FindItem(checklist.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk", found.ItemName)

	// But nothing new can be created under the deleted checklist.
	_, err = db.CreateItem(checklist.ID, "Bread")
	assert.True(t, db.IsNotFound(err))
}
