package database

import (
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec/msgpack"
	"github.com/asdine/storm/v3/q"
	"github.com/mdouchement/checklist/internal/model"
	"github.com/pkg/errors"
)

type strm struct {
	db *storm.DB
}

// StormCodec is the format used to store data in the database.
var StormCodec = storm.Codec(msgpack.Codec)

// StormInit initializes Storm database.
func StormInit(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	if err := db.Init(&model.User{}); err != nil {
		return errors.Wrap(err, "could not init user index")
	}

	if err := db.Init(&model.Checklist{}); err != nil {
		return errors.Wrap(err, "could not init checklist index")
	}

	err = db.Init(&model.ChecklistItem{})
	return errors.Wrap(err, "could not init item index")
}

// StormOpen returns a new Storm database connection.
func StormOpen(database string) (Client, error) {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return nil, errors.Wrap(err, "could not get database connection")
	}

	return &strm{
		db: db,
	}, nil
}

// Save inserts or updates the entry in database with the given model.
func (c *strm) Save(m model.Model) error {
	t := time.Now().UTC()
	m.SetUpdatedAt(t)

	if m.GetID() == 0 {
		m.SetCreatedAt(t)
	}

	return errors.Wrap(c.db.Save(m), "could not save the model")
}

// Delete deletes the entry in database with the given model.
func (c *strm) Delete(m model.Model) error {
	return errors.Wrap(c.db.DeleteStruct(m), "could not delete the model")
}

// Close the database.
func (c *strm) Close() error {
	return c.db.Close()
}

// IsNotFound returns true if err is a not found error.
func (c *strm) IsNotFound(err error) bool {
	return errors.Cause(err) == storm.ErrNotFound
}

// IsAlreadyExists returns true if err is a uniqueness violation error.
func (c *strm) IsAlreadyExists(err error) bool {
	return errors.Cause(err) == storm.ErrAlreadyExists
}

// FindUserByUsername returns the user for the given username.
func (c *strm) FindUserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := c.db.One("Username", username, &user); err != nil {
		return nil, errors.Wrap(err, "find user by username")
	}
	return &user, nil
}

// FindUserByMail returns the user for the given email.
func (c *strm) FindUserByMail(email string) (*model.User, error) {
	var user model.User
	if err := c.db.One("Email", email, &user); err != nil {
		return nil, errors.Wrap(err, "find user by mail")
	}
	return &user, nil
}

// FindChecklist returns the checklist for the given id.
func (c *strm) FindChecklist(id int) (*model.Checklist, error) {
	var checklist model.Checklist
	if err := c.db.One("ID", id, &checklist); err != nil {
		return nil, errors.Wrap(err, "could not find checklist")
	}
	return &checklist, nil
}

// FindChecklists returns all the checklists.
func (c *strm) FindChecklists() ([]*model.Checklist, error) {
	checklists := make([]*model.Checklist, 0)
	err := c.db.All(&checklists)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find checklists")
	}
	return checklists, nil
}

// DeleteChecklist deletes the checklist for the given id and returns it.
// Owned items are left untouched.
func (c *strm) DeleteChecklist(id int) (*model.Checklist, error) {
	tx, err := c.db.Begin(true)
	if err != nil {
		return nil, errors.Wrap(err, "could not begin transaction")
	}
	defer tx.Rollback()

	var checklist model.Checklist
	if err := tx.One("ID", id, &checklist); err != nil {
		return nil, errors.Wrap(err, "could not find checklist")
	}

	if err := tx.DeleteStruct(&checklist); err != nil {
		return nil, errors.Wrap(err, "could not delete checklist")
	}

	return &checklist, errors.Wrap(tx.Commit(), "could not commit checklist deletion")
}

// CreateItem creates an item under the given checklist.
// The parent checklist lookup runs in the same write transaction as the
// insertion so the reference cannot go stale in between.
func (c *strm) CreateItem(checklistID int, itemName string) (*model.ChecklistItem, error) {
	tx, err := c.db.Begin(true)
	if err != nil {
		return nil, errors.Wrap(err, "could not begin transaction")
	}
	defer tx.Rollback()

	var checklist model.Checklist
	if err := tx.One("ID", checklistID, &checklist); err != nil {
		return nil, errors.Wrap(err, "could not find parent checklist")
	}

	t := time.Now().UTC()
	item := &model.ChecklistItem{
		ChecklistID: checklistID,
		ItemName:    itemName,
	}
	item.SetCreatedAt(t)
	item.SetUpdatedAt(t)

	if err := tx.Save(item); err != nil {
		return nil, errors.Wrap(err, "could not save item")
	}

	return item, errors.Wrap(tx.Commit(), "could not commit item creation")
}

// FindItem returns the item matching both the given checklist id and item id.
func (c *strm) FindItem(checklistID, itemID int) (*model.ChecklistItem, error) {
	var item model.ChecklistItem
	err := c.db.Select(q.Eq("ID", itemID), q.Eq("ChecklistID", checklistID)).First(&item)
	if err != nil {
		return nil, errors.Wrap(err, "could not find item")
	}
	return &item, nil
}

// FindItemsByChecklist returns all the items of the given checklist.
func (c *strm) FindItemsByChecklist(checklistID int) ([]*model.ChecklistItem, error) {
	items := make([]*model.ChecklistItem, 0)
	err := c.db.Select(q.Eq("ChecklistID", checklistID)).Find(&items)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find items")
	}
	return items, nil
}

// ToggleItemStatus negates the item's status and returns the updated item.
// bbolt allows a single write transaction at a time so concurrent toggles on
// the same item are linearized, each one observing the previous one's write.
func (c *strm) ToggleItemStatus(checklistID, itemID int) (*model.ChecklistItem, error) {
	tx, err := c.db.Begin(true)
	if err != nil {
		return nil, errors.Wrap(err, "could not begin transaction")
	}
	defer tx.Rollback()

	var item model.ChecklistItem
	err = tx.Select(q.Eq("ID", itemID), q.Eq("ChecklistID", checklistID)).First(&item)
	if err != nil {
		return nil, errors.Wrap(err, "could not find item")
	}

	item.Status = !item.Status
	item.SetUpdatedAt(time.Now().UTC())

	if err := tx.Save(&item); err != nil {
		return nil, errors.Wrap(err, "could not save item")
	}

	return &item, errors.Wrap(tx.Commit(), "could not commit status toggle")
}

// RenameItem updates the item's name and returns the updated item.
func (c *strm) RenameItem(checklistID, itemID int, itemName string) (*model.ChecklistItem, error) {
	tx, err := c.db.Begin(true)
	if err != nil {
		return nil, errors.Wrap(err, "could not begin transaction")
	}
	defer tx.Rollback()

	var item model.ChecklistItem
	err = tx.Select(q.Eq("ID", itemID), q.Eq("ChecklistID", checklistID)).First(&item)
	if err != nil {
		return nil, errors.Wrap(err, "could not find item")
	}

	item.ItemName = itemName
	item.SetUpdatedAt(time.Now().UTC())

	if err := tx.Save(&item); err != nil {
		return nil, errors.Wrap(err, "could not save item")
	}

	return &item, errors.Wrap(tx.Commit(), "could not commit item rename")
}

// DeleteItem deletes the item matching the given pair and returns it.
func (c *strm) DeleteItem(checklistID, itemID int) (*model.ChecklistItem, error) {
	tx, err := c.db.Begin(true)
	if err != nil {
		return nil, errors.Wrap(err, "could not begin transaction")
	}
	defer tx.Rollback()

	var item model.ChecklistItem
	err = tx.Select(q.Eq("ID", itemID), q.Eq("ChecklistID", checklistID)).First(&item)
	if err != nil {
		return nil, errors.Wrap(err, "could not find item")
	}

	if err := tx.DeleteStruct(&item); err != nil {
		return nil, errors.Wrap(err, "could not delete item")
	}

	return &item, errors.Wrap(tx.Commit(), "could not commit item deletion")
}
