package services

// ServiceContainer bundles the service facades handed to route registration,
// so the handler wiring takes one dependency instead of four.
type ServiceContainer struct {
	Account     AccountSvc
	Category    CategorySvc
	Transaction TransactionSvc
	User        UserSvc
}
