package main

import (
	"fmt"

	"github.com/asdine/storm/v3"
	"github.com/mdouchement/checklist/internal/database"
	"github.com/mdouchement/checklist/internal/model"
	"github.com/muesli/coral"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	c := &coral.Command{
		Use:   "rmuser DATABASE USERNAME",
		Short: "Remove a user from the database",
		Args:  coral.ExactArgs(2),
		RunE: func(_ *coral.Command, args []string) error {
			//
			//
			fmt.Println("Opening", args[0])
			db, err := storm.Open(args[0], database.StormCodec)
			if err != nil {
				return errors.Wrap(err, "could not open database")
			}
			defer db.Close()

			// Fetch user
			var user model.User
			err = db.One("Username", args[1], &user)
			if err != nil {
				if err == storm.ErrNotFound {
					fmt.Println("No account for this username")
					return nil
				}
				return errors.Wrap(err, "find user by username")
			}

			fmt.Println("User found:", user.ID)

			// Checklists are not tied to users, so only the user record goes away.
			err = db.DeleteStruct(&user)
			if err != nil && err != storm.ErrNotFound {
				return errors.Wrap(err, "delete user")
			}
			fmt.Println("User removed")

			return nil
		},
	}

	if err := c.Execute(); err != nil {
		logrus.Fatalf("%+v", err)
	}
}
