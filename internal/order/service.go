package order

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// AddOrder records o as the most recent order.
func (s *Service) AddOrder(o Order) {
	s.repo.Add(o)
}

// UpdateOrderStatus moves the order to status. Any status may follow any other.
// Unknown ids are ignored and reported as false.
func (s *Service) UpdateOrderStatus(id string, status Status) bool {
	return s.repo.UpdateStatus(id, status)
}

func (s *Service) List() []Order {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Order, error) {
	return s.repo.GetByID(id)
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalSales    float64 `json:"totalSales"`
	PendingOrders int     `json:"pendingOrders"`
	ProductCount  int     `json:"productCount"`
}

func (s *Service) Stats(productCount int) Stats {
	st := Stats{ProductCount: productCount}
	for _, o := range s.repo.List() {
		st.TotalSales += o.Total
		if o.Status == StatusPending {
			st.PendingOrders++
		}
	}
	return st
}
