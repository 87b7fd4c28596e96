package domain

// SalonService is one entry of the fixed service price list
type SalonService struct {
	Name  string
	Price float64 // BRL
}

// ServiceCatalog is the fixed list of services a client can book
var ServiceCatalog = []SalonService{
	{Name: "1 Sessão Bronzeamento", Price: 100.00},
	{Name: "2 Sessões Bronzeamento", Price: 180.00},
	{Name: "3 Sessões Bronzeamento", Price: 240.00},
	{Name: "Esfoliação Corporal", Price: 40.00},
	{Name: "Banho de Lua", Price: 30.00},
}

// IsCatalogService returns true if the name matches a catalog service
func IsCatalogService(name string) bool {
	for _, s := range ServiceCatalog {
		if s.Name == name {
			return true
		}
	}
	return false
}

// ServiceByName looks up a catalog service by its name
func ServiceByName(name string) (SalonService, bool) {
	for _, s := range ServiceCatalog {
		if s.Name == name {
			return s, true
		}
	}
	return SalonService{}, false
}
