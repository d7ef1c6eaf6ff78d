package models

// ServiceItem is a single row of the price list. Duration and price are
// display strings ("150 perc", "12.000 Ft").
type ServiceItem struct {
	Name     string `json:"name" bson:"name" binding:"required"`
	Duration string `json:"duration" bson:"duration"`
	Price    string `json:"price" bson:"price"`
}

// ServiceCategory groups the price list under a stable key ("szempilla",
// "smink", ...). Updates are keyed by Key rather than ID.
type ServiceCategory struct {
	ID    string        `json:"id,omitempty" bson:"id"`
	Key   string        `json:"key" bson:"key"`
	Title string        `json:"title" bson:"title"`
	Image string        `json:"image" bson:"image"`
	Items []ServiceItem `json:"items" bson:"items"`
}

// ServiceCategoryInput defines the expected JSON structure for replacing a
// category; the key comes from the URL path.
type ServiceCategoryInput struct {
	Title string        `json:"title" binding:"required"`
	Image string        `json:"image"`
	Items []ServiceItem `json:"items" binding:"required,dive"`
}

// DefaultServiceCategories is the built-in price list shown until the
// catalog is edited through the admin surface.
func DefaultServiceCategories() []ServiceCategory {
	return []ServiceCategory{
		{
			Key:   "szempilla",
			Title: "Szempilla Építés",
			Image: "https://images.unsplash.com/photo-1652201767864-49472c48b145?w=800&q=80",
			Items: []ServiceItem{
				{Name: "Klasszikus Szempilla Építés", Duration: "150 perc", Price: "12.000 Ft"},
				{Name: "Volume Szempilla Építés", Duration: "180 perc", Price: "15.000 Ft"},
				{Name: "Extra styling Szempilla Építés", Duration: "180 perc", Price: "16.000 Ft"},
				{Name: "Szempilla Eltávolítás", Duration: "30 perc", Price: "3.000 Ft"},
				{Name: "Karbantartás (3 hét)", Duration: "120 perc", Price: "10.000 Ft"},
				{Name: "Karbantartás (4-5 hét)", Duration: "120 perc", Price: "14.000 Ft"},
				{Name: "Szempilla Lifting", Duration: "60 perc", Price: "10.000 Ft"},
			},
		},
		{
			Key:   "szemoldok",
			Title: "Szemöldök Kezelések",
			Image: "https://images.unsplash.com/photo-1521146764736-56c929d59c83?w=800&q=80",
			Items: []ServiceItem{
				{Name: "Szemöldök Festés", Duration: "20 perc", Price: "2.000 Ft"},
				{Name: "Szemöldök Formázás + Festés", Duration: "30 perc", Price: "3.000 Ft"},
				{Name: "Szemöldök Laminálás", Duration: "60 perc", Price: "10.000 Ft"},
			},
		},
		{
			Key:   "smink",
			Title: "Smink Szolgáltatások",
			Image: "https://images.unsplash.com/photo-1692856184951-8e06bba6b4b5?w=800&q=80",
			Items: []ServiceItem{
				{Name: "Nappali Smink", Duration: "45 perc", Price: "8.000 Ft"},
				{Name: "Alkalmi Smink", Duration: "60 perc", Price: "12.000 Ft"},
				{Name: "Bridal Smink Próba", Duration: "90 perc", Price: "15.000 Ft"},
				{Name: "Bridal Smink", Duration: "90 perc", Price: "15.000 Ft"},
				{Name: "Smink Korrekció", Duration: "30 perc", Price: "5.000 Ft"},
				{Name: "Smink Oktatás (1 óra)", Duration: "60 perc", Price: "10.000 Ft"},
				{Name: "Smink Oktatás (2 óra)", Duration: "120 perc", Price: "18.000 Ft"},
			},
		},
		{
			Key:   "arckezeles",
			Title: "Arckezelések",
			Image: "https://images.unsplash.com/photo-1596178060671-7a80dc8059ea?w=800&q=80",
			Items: []ServiceItem{
				{Name: "Hidrodermabrasio + Arcmaszk", Duration: "45 perc", Price: "12.000 Ft"},
				{Name: "Spray Kezelés + Arcmaszk", Duration: "45 perc", Price: "11.000 Ft"},
				{Name: "Ultrahang Arckezelés", Duration: "45 perc", Price: "13.000 Ft"},
				{Name: "RF Arckezelés (Ránctalanítás)", Duration: "45 perc", Price: "15.000 Ft"},
				{Name: "Hidegkalapács Kezelés", Duration: "30 perc", Price: "8.000 Ft"},
				{Name: "Komplex Arckezelés", Duration: "75 perc", Price: "24.000 Ft"},
				{Name: "Premium Arckezelés", Duration: "90 perc", Price: "32.000 Ft"},
			},
		},
		{
			Key:   "arcmasszazs",
			Title: "Arcmasszázs Kezelések",
			Image: "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?w=800&q=80",
			Items: []ServiceItem{
				{Name: "Frissítő Arcmasszázs", Duration: "30 perc", Price: "6.000 Ft"},
				{Name: "Japán Arcmasszázs + Dekoltázs", Duration: "45 perc", Price: "10.000 Ft"},
				{Name: "Face Lifting Arcmasszázs + Dekoltázs", Duration: "60 perc", Price: "12.000 Ft"},
			},
		},
		{
			Key:   "csomagok",
			Title: "Kombinált Csomagok",
			Image: "https://images.unsplash.com/photo-1601002257790-ebe0966a85ae?w=800&q=80",
			Items: []ServiceItem{
				{Name: "\"Lash & Makeup\" Csomag", Duration: "150 perc", Price: "25.000 Ft"},
				{Name: "\"Art of Beauty\" Csomag", Duration: "180 perc", Price: "38.000 Ft"},
				{Name: "\"Bridal Beauty\" Csomag", Duration: "210 perc", Price: "52.000 Ft"},
				{Name: "\"Express Beauty\" Csomag", Duration: "90 perc", Price: "14.000 Ft"},
				{Name: "\"Lash & Brow Art\" Csomag", Duration: "120 perc", Price: "18.000 Ft"},
				{Name: "Arcfiatalítás Sorozat (4 kezelés)", Duration: "4x90 perc", Price: "120.000 Ft"},
			},
		},
	}
}
