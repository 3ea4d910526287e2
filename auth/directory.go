// Package auth resolves demo credentials to sessions. The credential list is
// closed: one master account plus one account per restaurant and per
// dispatcher currently in the store.
package auth

import (
	"errors"
	"fmt"

	"delivery-app/models"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email, password or role")

const (
	MasterEmail = "master@app.com"
	masterID    = "master1"
	masterName  = "Administrador Master"
	emailDomain = "@app.com"

	masterPassword     = "master123"
	restaurantPassword = "rest123"
	dispatcherPassword = "disp123"
)

// Catalog is the part of the store the directory derives accounts from.
type Catalog interface {
	Restaurants() []models.Restaurant
	Dispatchers() []models.Dispatcher
}

type account struct {
	session models.Session
	hash    []byte
}

// Directory checks logins against the demo account list.
type Directory struct {
	catalog Catalog
	hashes  map[models.UserRole][]byte
}

// NewDirectory hashes the shared demo passwords once with the given bcrypt cost.
func NewDirectory(catalog Catalog, cost int) (*Directory, error) {
	d := &Directory{catalog: catalog, hashes: map[models.UserRole][]byte{}}
	for role, pw := range map[models.UserRole]string{
		models.RoleMaster:     masterPassword,
		models.RoleRestaurant: restaurantPassword,
		models.RoleDispatcher: dispatcherPassword,
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
		if err != nil {
			return nil, fmt.Errorf("hash %s password: %w", role, err)
		}
		d.hashes[role] = hash
	}
	return d, nil
}

// EmailFor returns the login email of a restaurant or dispatcher id.
func EmailFor(id string) string {
	return id + emailDomain
}

// accounts builds the list from the current catalog, so restaurants added or
// deleted at runtime gain or lose their login immediately.
func (d *Directory) accounts() []account {
	list := []account{{
		session: models.Session{UserID: masterID, Email: MasterEmail, Name: masterName, Role: models.RoleMaster},
		hash:    d.hashes[models.RoleMaster],
	}}
	for _, r := range d.catalog.Restaurants() {
		list = append(list, account{
			session: models.Session{
				UserID:       r.ID,
				Email:        EmailFor(r.ID),
				Name:         r.Name,
				Role:         models.RoleRestaurant,
				RestaurantID: r.ID,
			},
			hash: d.hashes[models.RoleRestaurant],
		})
	}
	for _, disp := range d.catalog.Dispatchers() {
		list = append(list, account{
			session: models.Session{UserID: disp.ID, Email: EmailFor(disp.ID), Name: disp.Name, Role: models.RoleDispatcher},
			hash:    d.hashes[models.RoleDispatcher],
		})
	}
	return list
}

// Login returns the session whose email, password and role all match exactly.
func (d *Directory) Login(email, password string, role models.UserRole) (models.Session, error) {
	for _, acc := range d.accounts() {
		if acc.session.Email != email || acc.session.Role != role {
			continue
		}
		if bcrypt.CompareHashAndPassword(acc.hash, []byte(password)) != nil {
			return models.Session{}, ErrInvalidCredentials
		}
		return acc.session, nil
	}
	return models.Session{}, ErrInvalidCredentials
}
