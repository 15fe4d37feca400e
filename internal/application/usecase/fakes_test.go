package usecase_test

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jonnattanChoque/CRMGraphQL/internal/domain"
	"github.com/jonnattanChoque/CRMGraphQL/internal/domain/entity"
)

// Repositorios en memoria que implementan los puertos de dominio para las
// pruebas de casos de uso.

type fakeProductRepo struct {
	products map[string]*entity.Product // por id hex
	order    []string
	// failDecrement simula perder la carrera del decremento con guarda
	// para el producto indicado.
	failDecrement map[string]bool
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:      map[string]*entity.Product{},
		failDecrement: map[string]bool{},
	}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID.Hex()] = p
	r.order = append(r.order, p.ID.Hex())
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Search(_ context.Context, text string, limit int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range r.order {
		p, ok := r.products[id]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name+" "+p.Description), strings.ToLower(text)) {
			out = append(out, p)
		}
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.products[p.ID.Hex()]; !ok {
		return domain.ErrProductNotFound
	}
	cp := *p
	r.products[p.ID.Hex()] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, id string, qty int) error {
	p, ok := r.products[id]
	if !ok || p.Stock < qty || r.failDecrement[id] {
		return domain.ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}

func (r *fakeProductRepo) RestoreStock(_ context.Context, id string, qty int) error {
	if p, ok := r.products[id]; ok {
		p.Stock += qty
	}
	return nil
}

func (r *fakeProductRepo) stock(id string) int {
	if p, ok := r.products[id]; ok {
		return p.Stock
	}
	return -1
}

type fakeClientRepo struct {
	clients map[string]*entity.Client // por id hex
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	for _, existing := range r.clients {
		if existing.Email == c.Email {
			return domain.ErrClientAlreadyExists
		}
	}
	r.clients[c.ID.Hex()] = c
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) GetByEmail(_ context.Context, email string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) ListBySeller(_ context.Context, sellerID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if c.Seller.Hex() == sellerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	if _, ok := r.clients[c.ID.Hex()]; !ok {
		return domain.ErrClientNotFound
	}
	cp := *c
	r.clients[c.ID.Hex()] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

type fakeOrderRepo struct {
	orders  map[string]*entity.Order // por id hex
	clients *fakeClientRepo
	users   map[string]*entity.User // por id hex, para TopSellers
}

func newFakeOrderRepo(clients *fakeClientRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:  map[string]*entity.Order{},
		clients: clients,
		users:   map[string]*entity.User{},
	}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.orders[o.ID.Hex()] = o
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrderRepo) ListBySeller(_ context.Context, sellerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.Seller.Hex() == sellerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListBySellerAndStatus(_ context.Context, sellerID, status string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.Seller.Hex() == sellerID && o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *entity.Order) error {
	if _, ok := r.orders[o.ID.Hex()]; !ok {
		return domain.ErrOrderNotFound
	}
	cp := *o
	r.orders[o.ID.Hex()] = &cp
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) TopClients(_ context.Context) ([]*entity.TopClient, error) {
	totals := r.groupCompleted(func(o *entity.Order) primitive.ObjectID { return o.Client })
	var out []*entity.TopClient
	for id, total := range totals {
		c, ok := r.clients.clients[id]
		if !ok {
			continue
		}
		out = append(out, &entity.TopClient{Total: total, Client: *c})
	}
	return out, nil
}

func (r *fakeOrderRepo) TopSellers(_ context.Context) ([]*entity.TopSeller, error) {
	totals := r.groupCompleted(func(o *entity.Order) primitive.ObjectID { return o.Seller })
	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if totals[ids[i]] != totals[ids[j]] {
			return totals[ids[i]] > totals[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > 3 {
		ids = ids[:3]
	}
	var out []*entity.TopSeller
	for _, id := range ids {
		u, ok := r.users[id]
		if !ok {
			continue
		}
		out = append(out, &entity.TopSeller{Total: totals[id], Seller: *u})
	}
	return out, nil
}

func (r *fakeOrderRepo) groupCompleted(key func(*entity.Order) primitive.ObjectID) map[string]float64 {
	totals := map[string]float64{}
	for _, o := range r.orders {
		if o.Status == entity.OrderStatusCompleted {
			totals[key(o).Hex()] += o.Total
		}
	}
	return totals
}
