package store

import "wedding_hall_backend/internal/models"

// NewSeeded returns a store loaded with the demo data set the dashboard ships
// with: two bookings, one viewing request, two menu packages, four portfolio
// addons, four stalls and two explicit availability records.
func NewSeeded() *Store {
	s := New()
	s.Update(func(d *Data) {
		d.Bookings = []models.WeddingBooking{
			{
				ID:            "W-101",
				ClientName:    "Sarah & James",
				Contact:       "sarah.j@example.com",
				PhoneNumber:   "+60 12-345 6789",
				Date:          "2024-06-15",
				Slot:          models.SlotNight,
				Status:        models.BookingStatusApproved,
				Guests:        1000,
				TotalAmount:   19900,
				MenuPackageID: "M1",
				Notes:         "Requires extra space for photo booth",
			},
			{
				ID:            "W-102",
				ClientName:    "Michael & Lin",
				Contact:       "lin.m@example.com",
				PhoneNumber:   "+60 17-987 6543",
				Date:          "2024-06-20",
				Slot:          models.SlotDay,
				Status:        models.BookingStatusPending,
				Guests:        100,
				TotalAmount:   790,
				MenuPackageID: "M2",
			},
		}
		d.Viewings = []models.ViewingRequest{
			{
				ID:         "V-201",
				ClientName: "Emma Watson",
				Contact:    "emma@watson.co",
				Date:       "2024-05-10",
				Time:       "14:00",
				Status:     models.BookingStatusPending,
			},
		}
		d.Menus = []models.MenuPackage{
			{
				ID:          "M1",
				Name:        "Pakej Sanding Excellence",
				BasePax:     1000,
				BasePrice:   19900,
				PricePerPax: 19.9,
				Description: "Premier all-in package for large celebrations with Set A/B options.",
				Items: []string{
					"Nasi Beriani/Jagung/Hujan Panas",
					"Ayam Masak Merah/Sambal",
					"Daging Beriani/Bistik/Asam Pedas",
					"Sayur Dalca",
					"Jelatah/Pajeri Nenas",
					"Air Balang (14 Jenis)",
				},
				BrideItems: []string{
					"Ayam Golek Istimewa",
					"Udang Panjat",
					"Siakap Tiga Rasa",
					"Buah-buahan Ukiran",
					"Puding Diraja",
				},
				Inclusions: []string{
					"50 Pax Hidangan Pengantin",
					"Hidangan Sampingan (Kuih)",
					"Percuma DJ & PA Sistem",
					"Kek 2 Tingkat",
					"Full Hall Deco",
				},
				Icon: "fa-crown",
			},
			{
				ID:          "M2",
				Name:        "Pakej Nikah Sarapan",
				BasePax:     100,
				BasePrice:   790,
				PricePerPax: 7.9,
				Description: "Morning tea and breakfast package for intimate Nikah ceremonies.",
				Items: []string{
					"Mee Goreng",
					"Bihun Goreng",
					"Nasi Lemak",
					"Aneka Kuih-muih",
					"Air Panas & Sejuk",
				},
				BrideItems: []string{"Set Sarapan Premium", "Buah-buahan Segar"},
				Inclusions: []string{"Meja Nikah", "Set Kerusi Dior"},
				Icon:       "fa-sun",
			},
		}
		d.Addons = []models.AddonService{
			{
				ID:          "A1",
				Name:        "Official Event Photographer",
				Category:    models.AddonCategoryPhotographer,
				Price:       1500,
				Description: "8 hours coverage, unlimited high-res softcopies, 1 custom album.",
				Icon:        "fa-camera",
			},
			{
				ID:          "A2",
				Name:        "Digital E-Card Suite",
				Category:    models.AddonCategoryECard,
				Price:       150,
				Description: "Animated digital invite with RSVP system and location maps.",
				Icon:        "fa-envelope-open-text",
			},
			{
				ID:          "A3",
				Name:        "Professional Emcee & Sound System",
				Category:    models.AddonCategoryMC,
				Price:       800,
				Description: "Bilingual host for the ceremony with basic PA setup, experienced in wedding protocols.",
				Icon:        "fa-microphone-lines",
			},
			{
				ID:          "A4",
				Name:        "Premium Hall Audio System",
				Category:    models.AddonCategorySoundSystem,
				Price:       1200,
				Description: "Line array speaker system, 4 wireless mics, and dedicated sound engineer.",
				Icon:        "fa-tower-broadcast",
			},
		}
		d.StallItems = []string{"Ayam Golek", "Kuali Goreng", "Apam Crispy", "Aiskrim"}
		d.Availability = []models.AvailabilitySlot{
			{Date: "2024-06-15", DaySlot: true, NightSlot: false},
			{Date: "2024-06-16", DaySlot: true, NightSlot: true},
		}
	})
	return s
}
