package services

// ServiceContainer aggregates all service facades for handler wiring.
type ServiceContainer struct {
	TransactionSvc TransactionSvc
	SettlementSvc  SettlementSvc
	RateConfigSvc  RateConfigSvc
	WorkspaceSvc   WorkspaceSvc
	UserSvc        UserSvc
	TokenSvc       TokenSvcFacade
	GoogleOAuthSvc GoogleOAuthSvcFacade
	ClientSvc      ClientSvc
}
