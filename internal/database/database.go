package database

import (
	"github.com/mdouchement/checklist/internal/model"
)

type (
	// A Client can interacts with the database.
	Client interface {
		// Save inserts or updates the entry in database with the given model.
		Save(m model.Model) error
		// Delete deletes the entry in database with the given model.
		Delete(m model.Model) error
		// Close the database.
		Close() error
		// IsNotFound returns true if err is a not found error.
		IsNotFound(err error) bool
		// IsAlreadyExists returns true if err is a uniqueness violation error.
		IsAlreadyExists(err error) bool

		UserInteraction
		ChecklistInteraction
		ChecklistItemInteraction
	}

	// An UserInteraction defines all the methods used to interact with a user record.
	UserInteraction interface {
		// FindUserByUsername returns the user for the given username.
		FindUserByUsername(username string) (*model.User, error)
		// FindUserByMail returns the user for the given email.
		FindUserByMail(email string) (*model.User, error)
	}

	// A ChecklistInteraction defines all the methods used to interact with a checklist record.
	ChecklistInteraction interface {
		// FindChecklist returns the checklist for the given id.
		FindChecklist(id int) (*model.Checklist, error)
		// FindChecklists returns all the checklists.
		FindChecklists() ([]*model.Checklist, error)
		// DeleteChecklist deletes the checklist for the given id and returns it.
		// Owned items are left untouched.
		DeleteChecklist(id int) (*model.Checklist, error)
	}

	// A ChecklistItemInteraction defines all the methods used to interact with an item record(s).
	// Items are addressed by the (checklistID, itemID) pair; an id alone never matches.
	ChecklistItemInteraction interface {
		// CreateItem creates an item under the given checklist.
		// The checklist must exist at creation time.
		CreateItem(checklistID int, itemName string) (*model.ChecklistItem, error)
		// FindItem returns the item matching both the given checklist id and item id.
		FindItem(checklistID, itemID int) (*model.ChecklistItem, error)
		// FindItemsByChecklist returns all the items of the given checklist.
		FindItemsByChecklist(checklistID int) ([]*model.ChecklistItem, error)
		// ToggleItemStatus negates the item's status and returns the updated item.
		// The read-negate-write runs in a single write transaction so concurrent
		// toggles on the same item are serialized.
		ToggleItemStatus(checklistID, itemID int) (*model.ChecklistItem, error)
		// RenameItem updates the item's name and returns the updated item.
		RenameItem(checklistID, itemID int, itemName string) (*model.ChecklistItem, error)
		// DeleteItem deletes the item matching the given pair and returns it.
		DeleteItem(checklistID, itemID int) (*model.ChecklistItem, error)
	}
)
