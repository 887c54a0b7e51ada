package stockaccount

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// memStore base de datos en memoria. fakeTx trabaja sobre una copia y solo la
// confirma si fn no devuelve error, igual que una transacción real.
type memStore struct {
	moves        map[string]entity.StockMove
	locations    map[string]entity.Location
	products     map[string]entity.Product
	categories   map[string]entity.ProductCategory
	pickings     map[string]entity.Picking
	pickingTypes map[string]entity.PickingType
	warehouses   map[string]entity.Warehouse
	stock        map[string]entity.Stock
	layers       []entity.StockValuationLayer
	accountMoves []entity.AccountMove
	companies    map[string]entity.Company
	seq          int
}

func newMemStore() *memStore {
	return &memStore{
		moves:        map[string]entity.StockMove{},
		locations:    map[string]entity.Location{},
		products:     map[string]entity.Product{},
		categories:   map[string]entity.ProductCategory{},
		pickings:     map[string]entity.Picking{},
		pickingTypes: map[string]entity.PickingType{},
		warehouses:   map[string]entity.Warehouse{},
		stock:        map[string]entity.Stock{},
		companies:    map[string]entity.Company{},
	}
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (s *memStore) clone() *memStore {
	return &memStore{
		moves:        cloneMap(s.moves),
		locations:    cloneMap(s.locations),
		products:     cloneMap(s.products),
		categories:   cloneMap(s.categories),
		pickings:     cloneMap(s.pickings),
		pickingTypes: cloneMap(s.pickingTypes),
		warehouses:   cloneMap(s.warehouses),
		stock:        cloneMap(s.stock),
		layers:       append([]entity.StockValuationLayer(nil), s.layers...),
		accountMoves: append([]entity.AccountMove(nil), s.accountMoves...),
		companies:    cloneMap(s.companies),
		seq:          s.seq,
	}
}

func (s *memStore) repos() Repos {
	return Repos{
		Moves:        fakeMoves{s},
		Locations:    fakeLocations{s},
		Products:     fakeProducts{s},
		Categories:   fakeCategories{s},
		Pickings:     fakePickings{s},
		PickingTypes: fakePickingTypes{s},
		Warehouses:   fakeWarehouses{s},
		Stock:        fakeStock{s},
		Layers:       fakeLayers{s},
		AccountMoves: fakeAccountMoves{s},
	}
}

func (s *memStore) quantity(productID, locationID string) decimal.Decimal {
	return s.stock[productID+"/"+locationID].Quantity
}

type fakeTx struct {
	mu    sync.Mutex
	store *memStore
	runs  int
}

func (f *fakeTx) Run(ctx context.Context, fn func(r Repos) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs++
	tx := f.store.clone()
	if err := fn(tx.repos()); err != nil {
		return err
	}
	*f.store = *tx
	return nil
}

type fakeMoves struct{ s *memStore }

func (r fakeMoves) Create(_ context.Context, m *entity.StockMove) error {
	r.s.moves[m.ID] = *m
	return nil
}

func (r fakeMoves) GetByID(_ context.Context, id string) (*entity.StockMove, error) {
	m, ok := r.s.moves[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r fakeMoves) GetForUpdate(_ context.Context, companyID, id string) (*entity.StockMove, error) {
	m, ok := r.s.moves[id]
	if !ok || m.CompanyID != companyID {
		return nil, nil
	}
	return &m, nil
}

func (r fakeMoves) Update(_ context.Context, m *entity.StockMove) error {
	r.s.moves[m.ID] = *m
	return nil
}

type fakeLocations struct{ s *memStore }

func (r fakeLocations) GetByID(_ context.Context, id string) (*entity.Location, error) {
	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

type fakeProducts struct{ s *memStore }

func (r fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r fakeProducts) UpdateStandardPrice(_ context.Context, id string, price decimal.Decimal) error {
	p, ok := r.s.products[id]
	if !ok {
		return fmt.Errorf("producto %s no existe", id)
	}
	p.StandardPrice = price
	r.s.products[id] = p
	return nil
}

type fakeCategories struct{ s *memStore }

func (r fakeCategories) GetByID(_ context.Context, id string) (*entity.ProductCategory, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

type fakePickings struct{ s *memStore }

func (r fakePickings) GetByID(_ context.Context, id string) (*entity.Picking, error) {
	p, ok := r.s.pickings[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type fakePickingTypes struct{ s *memStore }

func (r fakePickingTypes) GetByID(_ context.Context, id string) (*entity.PickingType, error) {
	p, ok := r.s.pickingTypes[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type fakeWarehouses struct{ s *memStore }

func (r fakeWarehouses) Create(_ context.Context, w *entity.Warehouse) error {
	r.s.warehouses[w.ID] = *w
	return nil
}

func (r fakeWarehouses) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r fakeWarehouses) Update(_ context.Context, w *entity.Warehouse) error {
	r.s.warehouses[w.ID] = *w
	return nil
}

func (r fakeWarehouses) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.s.warehouses {
		if w.CompanyID == companyID {
			w := w
			out = append(out, &w)
		}
	}
	return out, nil
}

func (r fakeWarehouses) Delete(_ context.Context, id string) error {
	delete(r.s.warehouses, id)
	return nil
}

type fakeStock struct{ s *memStore }

func (r fakeStock) Get(_ context.Context, productID, locationID string) (*entity.Stock, error) {
	st, ok := r.s.stock[productID+"/"+locationID]
	if !ok {
		return &entity.Stock{ProductID: productID, LocationID: locationID, Quantity: decimal.Zero}, nil
	}
	return &st, nil
}

func (r fakeStock) GetForUpdate(ctx context.Context, productID, locationID string) (*entity.Stock, error) {
	return r.Get(ctx, productID, locationID)
}

func (r fakeStock) OnHand(_ context.Context, productID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, st := range r.s.stock {
		if st.ProductID == productID {
			total = total.Add(st.Quantity)
		}
	}
	return total, nil
}

func (r fakeStock) Upsert(_ context.Context, st *entity.Stock) error {
	r.s.stock[st.ProductID+"/"+st.LocationID] = *st
	return nil
}

type fakeLayers struct{ s *memStore }

func (r fakeLayers) Create(_ context.Context, l *entity.StockValuationLayer) error {
	r.s.layers = append(r.s.layers, *l)
	return nil
}

func (r fakeLayers) ListByMove(_ context.Context, stockMoveID string) ([]*entity.StockValuationLayer, error) {
	var out []*entity.StockValuationLayer
	for _, l := range r.s.layers {
		if l.StockMoveID == stockMoveID {
			l := l
			out = append(out, &l)
		}
	}
	return out, nil
}

type fakeAccountMoves struct{ s *memStore }

func (r fakeAccountMoves) Create(_ context.Context, am *entity.AccountMove) error {
	if am.State != entity.AccountMovePosted {
		return errors.New("se esperaba un asiento contabilizado")
	}
	r.s.accountMoves = append(r.s.accountMoves, *am)
	return nil
}

func (r fakeAccountMoves) GetByID(_ context.Context, id string) (*entity.AccountMove, error) {
	for _, am := range r.s.accountMoves {
		if am.ID == id {
			am := am
			return &am, nil
		}
	}
	return nil, nil
}

func (r fakeAccountMoves) NextName(_ context.Context, _ string, date time.Time) (string, error) {
	r.s.seq++
	return fmt.Sprintf("STJ/%d/%05d", date.Year(), r.s.seq), nil
}

type fakeCompanies struct{ s *memStore }

func (r fakeCompanies) Create(_ context.Context, c *entity.Company) error {
	r.s.companies[c.ID] = *c
	return nil
}

func (r fakeCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r fakeCompanies) GetByNIT(_ context.Context, nit string) (*entity.Company, error) {
	for _, c := range r.s.companies {
		if c.NIT == nit {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r fakeCompanies) HasActiveModule(context.Context, string, string) (bool, error) {
	return true, nil
}

func (r fakeCompanies) ListModules(context.Context, string) ([]*entity.CompanyModule, error) {
	return nil, nil
}

func (r fakeCompanies) UpsertModule(context.Context, *entity.CompanyModule) error {
	return nil
}

type recordingPublisher struct {
	events []AccountMovePostedEvent
	err    error
}

func (p *recordingPublisher) PublishAccountMovePosted(_ context.Context, events ...AccountMovePostedEvent) error {
	p.events = append(p.events, events...)
	return p.err
}

type fakePDF struct{ called bool }

func (f *fakePDF) GenerateAccountMovePDF(_ context.Context, am *entity.AccountMove, _ *entity.Company) ([]byte, error) {
	f.called = true
	return []byte("%PDF-" + am.Name), nil
}
