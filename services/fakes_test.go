package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"onboard_panel/model"
)

// In-memory store fakes backing the service tests. They mirror the Mongo
// repositories' contracts: Get returns (nil, nil) on a miss, lists come
// back sorted by created_at descending.

type memCandidates struct {
	docs map[string]model.Candidate
}

func newMemCandidates() *memCandidates {
	return &memCandidates{docs: map[string]model.Candidate{}}
}

func (m *memCandidates) Insert(_ context.Context, c *model.Candidate) error {
	if _, ok := m.docs[c.ID]; ok {
		return fmt.Errorf("duplicate id %s", c.ID)
	}
	m.docs[c.ID] = *c
	return nil
}

func (m *memCandidates) Get(_ context.Context, id string) (*model.Candidate, error) {
	c, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	cp := c
	return &cp, nil
}

func (m *memCandidates) Replace(_ context.Context, c *model.Candidate) error {
	if _, ok := m.docs[c.ID]; !ok {
		return fmt.Errorf("no document %s", c.ID)
	}
	m.docs[c.ID] = *c
	return nil
}

func (m *memCandidates) Delete(_ context.Context, id string) error {
	delete(m.docs, id)
	return nil
}

func (m *memCandidates) ListByStatus(_ context.Context, statuses ...model.Status) ([]model.Candidate, error) {
	want := map[model.Status]bool{}
	for _, s := range statuses {
		want[s] = true
	}
	out := []model.Candidate{}
	for _, c := range m.docs {
		if len(want) == 0 || want[c.Status] {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memCandidates) DeleteAll(_ context.Context) error {
	m.docs = map[string]model.Candidate{}
	return nil
}

type memCompanies struct {
	order []string
	docs  map[string]model.Company
}

func newMemCompanies() *memCompanies {
	return &memCompanies{docs: map[string]model.Company{}}
}

func (m *memCompanies) Get(_ context.Context, id string) (*model.Company, error) {
	c, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	cp := c
	return &cp, nil
}

func (m *memCompanies) Save(_ context.Context, c *model.Company) error {
	if _, ok := m.docs[c.ID]; !ok {
		m.order = append(m.order, c.ID)
	}
	m.docs[c.ID] = *c
	return nil
}

func (m *memCompanies) Delete(_ context.Context, id string) error {
	delete(m.docs, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memCompanies) List(_ context.Context) ([]model.Company, error) {
	out := []model.Company{}
	for _, id := range m.order {
		out = append(out, m.docs[id])
	}
	return out, nil
}

func (m *memCompanies) DeleteAll(_ context.Context) error {
	m.docs = map[string]model.Company{}
	m.order = nil
	return nil
}

type memUsers struct {
	docs map[string]model.AdminUser
}

func newMemUsers() *memUsers {
	return &memUsers{docs: map[string]model.AdminUser{}}
}

func (m *memUsers) Insert(_ context.Context, u *model.AdminUser) error {
	if _, ok := m.docs[u.UID]; ok {
		return fmt.Errorf("duplicate uid %s", u.UID)
	}
	m.docs[u.UID] = *u
	return nil
}

func (m *memUsers) Get(_ context.Context, uid string) (*model.AdminUser, error) {
	u, ok := m.docs[uid]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*model.AdminUser, error) {
	for _, u := range m.docs {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Update(_ context.Context, u *model.AdminUser) error {
	if _, ok := m.docs[u.UID]; !ok {
		return fmt.Errorf("no user %s", u.UID)
	}
	m.docs[u.UID] = *u
	return nil
}

func (m *memUsers) Delete(_ context.Context, uid string) error {
	delete(m.docs, uid)
	return nil
}

func (m *memUsers) List(_ context.Context) ([]model.AdminUser, error) {
	out := []model.AdminUser{}
	for _, u := range m.docs {
		out = append(out, u)
	}
	return out, nil
}

type memBlobs struct {
	seq     int
	objects map[string][]byte
}

func newMemBlobs() *memBlobs {
	return &memBlobs{objects: map[string][]byte{}}
}

func (m *memBlobs) Upload(_ context.Context, ownerID, category, filename, _ string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.seq++
	locator := fmt.Sprintf("%s/%s/%d-%s", ownerID, category, m.seq, filename)
	m.objects[locator] = data
	return locator, nil
}

func (m *memBlobs) Open(_ context.Context, locator string) (io.ReadCloser, error) {
	data, ok := m.objects[locator]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", locator)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memBlobs) Delete(_ context.Context, locator string) error {
	if _, ok := m.objects[locator]; !ok {
		return fmt.Errorf("blob %s not found", locator)
	}
	delete(m.objects, locator)
	return nil
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
