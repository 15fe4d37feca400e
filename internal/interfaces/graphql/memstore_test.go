package graphql_test

import (
	"context"

	"github.com/jonnattanChoque/CRMGraphQL/internal/domain"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/entity"
)

// Almacenes en memoria que implementan los puertos de dominio para ejecutar
// el esquema completo sin base de datos.

type memUsers struct{ byEmail map[string]*entity.User }

func newMemUsers() *memUsers { return &memUsers{byEmail: map[string]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

type memProducts struct{ byID map[string]*entity.Product }

func newMemProducts() *memProducts { return &memProducts{byID: map[string]*entity.Product{}} }

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.byID[p.ID.Hex()] = p
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProducts) Search(_ context.Context, _ string, limit int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.byID {
		if int64(len(out)) == limit {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	if _, ok := m.byID[p.ID.Hex()]; !ok {
		return domain.ErrProductNotFound
	}
	cp := *p
	m.byID[p.ID.Hex()] = &cp
	return nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memProducts) DecrementStock(_ context.Context, id string, qty int) error {
	p, ok := m.byID[id]
	if !ok || p.Stock < qty {
		return domain.ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}

func (m *memProducts) RestoreStock(_ context.Context, id string, qty int) error {
	if p, ok := m.byID[id]; ok {
		p.Stock += qty
	}
	return nil
}

type memClients struct{ byID map[string]*entity.Client }

func newMemClients() *memClients { return &memClients{byID: map[string]*entity.Client{}} }

func (m *memClients) Create(_ context.Context, c *entity.Client) error {
	for _, existing := range m.byID {
		if existing.Email == c.Email {
			return domain.ErrClientAlreadyExists
		}
	}
	m.byID[c.ID.Hex()] = c
	return nil
}

func (m *memClients) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memClients) GetByEmail(_ context.Context, email string) (*entity.Client, error) {
	for _, c := range m.byID {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memClients) ListBySeller(_ context.Context, sellerID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range m.byID {
		if c.Seller.Hex() == sellerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memClients) Update(_ context.Context, c *entity.Client) error {
	if _, ok := m.byID[c.ID.Hex()]; !ok {
		return domain.ErrClientNotFound
	}
	cp := *c
	m.byID[c.ID.Hex()] = &cp
	return nil
}

func (m *memClients) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(m.byID, id)
	return nil
}

type memOrders struct{ byID map[string]*entity.Order }

func newMemOrders() *memOrders { return &memOrders{byID: map[string]*entity.Order{}} }

func (m *memOrders) Create(_ context.Context, o *entity.Order) error {
	m.byID[o.ID.Hex()] = o
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *memOrders) List(_ context.Context) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(m.byID))
	for _, o := range m.byID {
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrders) ListBySeller(_ context.Context, sellerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range m.byID {
		if o.Seller.Hex() == sellerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) ListBySellerAndStatus(_ context.Context, sellerID, status string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range m.byID {
		if o.Seller.Hex() == sellerID && o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) Update(_ context.Context, o *entity.Order) error {
	if _, ok := m.byID[o.ID.Hex()]; !ok {
		return domain.ErrOrderNotFound
	}
	cp := *o
	m.byID[o.ID.Hex()] = &cp
	return nil
}

func (m *memOrders) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memOrders) TopClients(_ context.Context) ([]*entity.TopClient, error) {
	return nil, nil
}

func (m *memOrders) TopSellers(_ context.Context) ([]*entity.TopSeller, error) {
	return nil, nil
}
