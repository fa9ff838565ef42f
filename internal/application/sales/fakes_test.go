package sales_test

import (
	"context"

	"github.com/shopspring/decimal"

	appinv "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// IDs válidos (uuid v4) para los requests de los tests.
const (
	idSupplier  = "11111111-1111-4111-8111-111111111111"
	idClient    = "22222222-2222-4222-8222-222222222222"
	idWarehouse = "33333333-3333-4333-8333-333333333333"
	idProduct   = "44444444-4444-4444-8444-444444444444"
	idProduct2  = "55555555-5555-4555-8555-555555555555"
	idPurchase  = "66666666-6666-4666-8666-666666666666"
	idSale      = "88888888-8888-4888-8888-888888888888"
	idSeller    = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	idBuyer     = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
)

// fakeTxRunner ejecuta fn directamente sobre los repositorios en memoria.
type fakeTxRunner struct {
	repos appinv.TxRepos
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(r appinv.TxRepos) error) error {
	return fn(f.repos)
}

type fakeStockRepo struct {
	fichas map[string]*entity.ProductStock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{fichas: make(map[string]*entity.ProductStock)}
}

func stockKey(productID, warehouseID string) string { return productID + "|" + warehouseID }

func (f *fakeStockRepo) Get(productID, warehouseID string) (*entity.ProductStock, error) {
	if s, ok := f.fichas[stockKey(productID, warehouseID)]; ok {
		c := *s
		return &c, nil
	}
	return &entity.ProductStock{ProductID: productID, WarehouseID: warehouseID}, nil
}

// GetForUpdate materializa la ficha en cero cuando no existe, como el adaptador
// real, que necesita una fila persistida para poder bloquearla.
func (f *fakeStockRepo) GetForUpdate(productID, warehouseID string) (*entity.ProductStock, error) {
	key := stockKey(productID, warehouseID)
	if _, ok := f.fichas[key]; !ok {
		f.fichas[key] = &entity.ProductStock{ProductID: productID, WarehouseID: warehouseID}
	}
	return f.Get(productID, warehouseID)
}

func (f *fakeStockRepo) Upsert(stock *entity.ProductStock) error {
	c := *stock
	f.fichas[stockKey(stock.ProductID, stock.WarehouseID)] = &c
	return nil
}

func (f *fakeStockRepo) ListByWarehouse(warehouseID string, _, _ int) ([]*entity.ProductStock, error) {
	var out []*entity.ProductStock
	for _, s := range f.fichas {
		if s.WarehouseID == warehouseID {
			c := *s
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeStockRepo) ListBelowMinimum(warehouseID string) ([]*entity.ProductStock, error) {
	var out []*entity.ProductStock
	for _, s := range f.fichas {
		if s.WarehouseID == warehouseID && s.MinimumStock > 0 && s.Stock < s.MinimumStock {
			c := *s
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(ids ...string) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, id := range ids {
		f.products[id] = &entity.Product{ID: id, Code: "C-" + id[:8], Name: "producto " + id[:8]}
	}
	return f
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }

func (f *fakeProductRepo) List(_, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeClientRepo struct{ clients map[string]*entity.Client }

func newFakeClientRepo(ids ...string) *fakeClientRepo {
	f := &fakeClientRepo{clients: make(map[string]*entity.Client)}
	for _, id := range ids {
		f.clients[id] = &entity.Client{ID: id, Name: "cliente"}
	}
	return f
}

func (f *fakeClientRepo) Create(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	if c, ok := f.clients[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}
func (f *fakeClientRepo) Update(c *entity.Client) error { f.clients[c.ID] = c; return nil }
func (f *fakeClientRepo) List(_, _ int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

type fakeSupplierRepo struct{ suppliers map[string]*entity.Supplier }

func newFakeSupplierRepo(ids ...string) *fakeSupplierRepo {
	f := &fakeSupplierRepo{suppliers: make(map[string]*entity.Supplier)}
	for _, id := range ids {
		f.suppliers[id] = &entity.Supplier{ID: id, Name: "proveedor"}
	}
	return f
}

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error { f.suppliers[s.ID] = s; return nil }
func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if s, ok := f.suppliers[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}
func (f *fakeSupplierRepo) Update(s *entity.Supplier) error { f.suppliers[s.ID] = s; return nil }
func (f *fakeSupplierRepo) List(_, _ int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range f.suppliers {
		out = append(out, s)
	}
	return out, nil
}

type fakeWarehouseRepo struct{ warehouses map[string]*entity.Warehouse }

func newFakeWarehouseRepo(ids ...string) *fakeWarehouseRepo {
	f := &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
	for _, id := range ids {
		f.warehouses[id] = &entity.Warehouse{ID: id, Name: "bodega"}
	}
	return f
}

func (f *fakeWarehouseRepo) Create(w *entity.Warehouse) error { f.warehouses[w.ID] = w; return nil }
func (f *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if w, ok := f.warehouses[id]; ok {
		return w, nil
	}
	return nil, domain.ErrNotFound
}
func (f *fakeWarehouseRepo) Update(w *entity.Warehouse) error { f.warehouses[w.ID] = w; return nil }
func (f *fakeWarehouseRepo) List(_, _ int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range f.warehouses {
		out = append(out, w)
	}
	return out, nil
}

type fakeUserRepo struct{ users map[string]*entity.User }

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}
func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}
func (f *fakeUserRepo) Update(u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) List(_, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type fakePurchaseRepo struct {
	purchases map[string]*entity.Purchase
	items     map[string]*entity.PurchaseItem
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{
		purchases: make(map[string]*entity.Purchase),
		items:     make(map[string]*entity.PurchaseItem),
	}
}

func (f *fakePurchaseRepo) Create(p *entity.Purchase) error {
	c := *p
	f.purchases[p.ID] = &c
	for i := range p.Items {
		it := p.Items[i]
		f.items[it.ID] = &it
	}
	return nil
}

func (f *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	p, ok := f.purchases[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *p
	c.Items = nil
	for _, it := range f.items {
		if it.PurchaseID == id {
			c.Items = append(c.Items, *it)
		}
	}
	return &c, nil
}

func (f *fakePurchaseRepo) GetForUpdate(id string) (*entity.Purchase, error) { return f.GetByID(id) }

func (f *fakePurchaseRepo) Update(p *entity.Purchase) error {
	cur, ok := f.purchases[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.PurchaseDate = p.PurchaseDate
	cur.InvoiceNumber = p.InvoiceNumber
	cur.UpdatedAt = p.UpdatedAt
	return nil
}

func (f *fakePurchaseRepo) UpdateBalance(id string, balanceDue decimal.Decimal, status string) error {
	p, ok := f.purchases[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.BalanceDue = balanceDue
	p.Status = status
	return nil
}

func (f *fakePurchaseRepo) List(status string, _, _ int) ([]*entity.Purchase, error) {
	var out []*entity.Purchase
	for id, p := range f.purchases {
		if status == "" || p.Status == status {
			c, _ := f.GetByID(id)
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakePurchaseRepo) CreateItem(it *entity.PurchaseItem) error {
	c := *it
	f.items[it.ID] = &c
	return nil
}

func (f *fakePurchaseRepo) UpdateItem(it *entity.PurchaseItem) error {
	cur, ok := f.items[it.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Quantity = it.Quantity
	cur.UnitPrice = it.UnitPrice
	cur.TotalPrice = it.TotalPrice
	return nil
}

func (f *fakePurchaseRepo) DeleteItem(itemID string) error {
	if _, ok := f.items[itemID]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, itemID)
	return nil
}

func (f *fakePurchaseRepo) GetItemForUpdate(itemID string) (*entity.PurchaseItem, error) {
	it, ok := f.items[itemID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *it
	return &c, nil
}

func (f *fakePurchaseRepo) UpdateItemEnteredStock(itemID string, enteredStock int64) error {
	it, ok := f.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	it.EnteredStock = enteredStock
	return nil
}

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
	items map[string]*entity.SaleItem
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{
		sales: make(map[string]*entity.Sale),
		items: make(map[string]*entity.SaleItem),
	}
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	c := *s
	f.sales[s.ID] = &c
	for i := range s.Items {
		it := s.Items[i]
		f.items[it.ID] = &it
	}
	return nil
}

func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *s
	c.Items = nil
	for _, it := range f.items {
		if it.SaleID == id {
			c.Items = append(c.Items, *it)
		}
	}
	return &c, nil
}

func (f *fakeSaleRepo) GetForUpdate(id string) (*entity.Sale, error) { return f.GetByID(id) }

func (f *fakeSaleRepo) Update(s *entity.Sale) error {
	cur, ok := f.sales[s.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.SaleDate = s.SaleDate
	cur.UpdatedAt = s.UpdatedAt
	return nil
}

func (f *fakeSaleRepo) UpdateBalance(id string, balanceDue decimal.Decimal, status string) error {
	s, ok := f.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.BalanceDue = balanceDue
	s.Status = status
	return nil
}

func (f *fakeSaleRepo) UpdateStatus(id, status string) error {
	s, ok := f.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Status = status
	return nil
}

func (f *fakeSaleRepo) List(status string, _, _ int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for id, s := range f.sales {
		if status == "" || s.Status == status {
			c, _ := f.GetByID(id)
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) CreateItem(it *entity.SaleItem) error {
	c := *it
	f.items[it.ID] = &c
	return nil
}

func (f *fakeSaleRepo) UpdateItem(it *entity.SaleItem) error {
	cur, ok := f.items[it.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Quantity = it.Quantity
	cur.DispatchedStock = it.DispatchedStock
	cur.UnitPrice = it.UnitPrice
	cur.TotalPrice = it.TotalPrice
	return nil
}

func (f *fakeSaleRepo) DeleteItem(itemID string) error {
	if _, ok := f.items[itemID]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, itemID)
	return nil
}

func (f *fakeSaleRepo) GetItemForUpdate(itemID string) (*entity.SaleItem, error) {
	it, ok := f.items[itemID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *it
	return &c, nil
}

func (f *fakeSaleRepo) UpdateItemDispatchedStock(itemID string, dispatchedStock int64) error {
	it, ok := f.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	it.DispatchedStock = dispatchedStock
	return nil
}

type fakePaymentRepo struct {
	payments map[string]*entity.Payment
	order    []string
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*entity.Payment)}
}

func (f *fakePaymentRepo) Create(p *entity.Payment) error {
	c := *p
	f.payments[p.ID] = &c
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *p
	return &c, nil
}

func (f *fakePaymentRepo) Update(p *entity.Payment) error {
	cur, ok := f.payments[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.PaymentMethod = p.PaymentMethod
	cur.PaymentDate = p.PaymentDate
	cur.UpdatedAt = p.UpdatedAt
	return nil
}

func (f *fakePaymentRepo) ListByTransaction(transactionID, transactionType string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, id := range f.order {
		p := f.payments[id]
		if p.TransactionID == transactionID && (transactionType == "" || p.TransactionType == transactionType) {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) List(_, _ int) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, id := range f.order {
		c := *f.payments[id]
		out = append(out, &c)
	}
	return out, nil
}
