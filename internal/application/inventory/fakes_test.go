package inventory_test

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
	idPurchItem = "77777777-7777-4777-8777-777777777777"
	idSale      = "88888888-8888-4888-8888-888888888888"
	idSaleItem  = "99999999-9999-4999-8999-999999999999"
	idKeeper    = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
)

// fakeTxRunner ejecuta fn directamente sobre los repositorios en memoria.
// No simula rollback: los tests de rechazo verifican que el error corte
// antes de la escritura que importa.
type fakeTxRunner struct {
	repos appinv.TxRepos
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(r appinv.TxRepos) error) error {
	return fn(f.repos)
}

// ── stock ────────────────────────────────────────────────────────────────────

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

// ── catálogo ─────────────────────────────────────────────────────────────────

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

// ── entradas ─────────────────────────────────────────────────────────────────

type fakeEntryRepo struct {
	entries map[string]*entity.Entry
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[string]*entity.Entry)}
}

func (f *fakeEntryRepo) Create(entry *entity.Entry) error {
	c := *entry
	c.Items = append([]entity.EntryItem(nil), entry.Items...)
	f.entries[entry.ID] = &c
	return nil
}

func (f *fakeEntryRepo) GetByID(id string) (*entity.Entry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *e
	c.Items = append([]entity.EntryItem(nil), e.Items...)
	return &c, nil
}

func (f *fakeEntryRepo) Update(entry *entity.Entry) error {
	e, ok := f.entries[entry.ID]
	if !ok {
		return domain.ErrNotFound
	}
	e.EntryDate = entry.EntryDate
	e.InvoiceNumber = entry.InvoiceNumber
	e.Note = entry.Note
	e.UpdatedAt = entry.UpdatedAt
	return nil
}

func (f *fakeEntryRepo) List(_, _ int) ([]*entity.Entry, error) {
	var out []*entity.Entry
	for id := range f.entries {
		e, _ := f.GetByID(id)
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEntryRepo) CreateItem(item *entity.EntryItem) error {
	e, ok := f.entries[item.EntryID]
	if !ok {
		return domain.ErrNotFound
	}
	e.Items = append(e.Items, *item)
	return nil
}

func (f *fakeEntryRepo) UpdateItem(item *entity.EntryItem) error {
	for _, e := range f.entries {
		for i := range e.Items {
			if e.Items[i].ID == item.ID {
				e.Items[i] = *item
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

func (f *fakeEntryRepo) DeleteItem(itemID string) error {
	for _, e := range f.entries {
		for i := range e.Items {
			if e.Items[i].ID == itemID {
				e.Items = append(e.Items[:i], e.Items[i+1:]...)
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

// ── salidas ──────────────────────────────────────────────────────────────────

type fakeOutputRepo struct {
	outputs map[string]*entity.Output
}

func newFakeOutputRepo() *fakeOutputRepo {
	return &fakeOutputRepo{outputs: make(map[string]*entity.Output)}
}

func (f *fakeOutputRepo) Create(output *entity.Output) error {
	c := *output
	c.Items = append([]entity.OutputItem(nil), output.Items...)
	f.outputs[output.ID] = &c
	return nil
}

func (f *fakeOutputRepo) GetByID(id string) (*entity.Output, error) {
	o, ok := f.outputs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *o
	c.Items = append([]entity.OutputItem(nil), o.Items...)
	return &c, nil
}

func (f *fakeOutputRepo) Update(output *entity.Output) error {
	o, ok := f.outputs[output.ID]
	if !ok {
		return domain.ErrNotFound
	}
	o.OutputDate = output.OutputDate
	o.UpdatedAt = output.UpdatedAt
	return nil
}

func (f *fakeOutputRepo) List(_, _ int) ([]*entity.Output, error) {
	var out []*entity.Output
	for id := range f.outputs {
		o, _ := f.GetByID(id)
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOutputRepo) CreateItem(item *entity.OutputItem) error {
	o, ok := f.outputs[item.OutputID]
	if !ok {
		return domain.ErrNotFound
	}
	o.Items = append(o.Items, *item)
	return nil
}

func (f *fakeOutputRepo) UpdateItem(item *entity.OutputItem) error {
	for _, o := range f.outputs {
		for i := range o.Items {
			if o.Items[i].ID == item.ID {
				o.Items[i] = *item
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

func (f *fakeOutputRepo) DeleteItem(itemID string) error {
	for _, o := range f.outputs {
		for i := range o.Items {
			if o.Items[i].ID == itemID {
				o.Items = append(o.Items[:i], o.Items[i+1:]...)
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

// ── compras ──────────────────────────────────────────────────────────────────

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

// ── ventas ───────────────────────────────────────────────────────────────────

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
