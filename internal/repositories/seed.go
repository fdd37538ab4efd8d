package repositories

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Prathamraj05/railbooker-zenith/internal/domain"
	"github.com/Prathamraj05/railbooker-zenith/internal/domain/models"
)

// Sample catalog. Station and train data mirror the published timetable
// excerpt the product demos against.

func SeedStations() []models.Station {
	return []models.Station{
		{ID: "s1", Name: "New Delhi Railway Station", Code: "NDLS", City: "Delhi", State: "Delhi"},
		{ID: "s2", Name: "Mumbai Central", Code: "MMCT", City: "Mumbai", State: "Maharashtra"},
		{ID: "s3", Name: "Chennai Central", Code: "MAS", City: "Chennai", State: "Tamil Nadu"},
		{ID: "s4", Name: "Howrah Junction", Code: "HWH", City: "Kolkata", State: "West Bengal"},
		{ID: "s5", Name: "Bengaluru City Junction", Code: "SBC", City: "Bengaluru", State: "Karnataka"},
		{ID: "s6", Name: "Ahmedabad Junction", Code: "ADI", City: "Ahmedabad", State: "Gujarat"},
		{ID: "s7", Name: "Jaipur Junction", Code: "JP", City: "Jaipur", State: "Rajasthan"},
		{ID: "s8", Name: "Lucknow Junction", Code: "LKO", City: "Lucknow", State: "Uttar Pradesh"},
	}
}

func SeedTrains() []models.Train {
	st := SeedStations()
	return []models.Train{
		{
			ID: "t1", Name: "Rajdhani Express", Number: "12301",
			From: st[0], To: st[1],
			DepartureTime: "16:00", ArrivalTime: "08:00",
			Duration: "16h 00m", Distance: "1384 km",
			AvailableSeats: map[domain.ClassType]int{
				domain.ClassSleeper: 42, domain.ClassAC3Tier: 25,
				domain.ClassAC2Tier: 15, domain.ClassACFirstClass: 6,
			},
			Fare: map[domain.ClassType]int64{
				domain.ClassSleeper: 755, domain.ClassAC3Tier: 1980,
				domain.ClassAC2Tier: 2890, domain.ClassACFirstClass: 4850,
			},
		},
		{
			ID: "t2", Name: "Shatabdi Express", Number: "12002",
			From: st[0], To: st[6],
			DepartureTime: "06:05", ArrivalTime: "10:40",
			Duration: "4h 35m", Distance: "303 km",
			AvailableSeats: map[domain.ClassType]int{
				domain.ClassSleeper: 0, domain.ClassAC3Tier: 0,
				domain.ClassAC2Tier: 28, domain.ClassACFirstClass: 12,
			},
			Fare: map[domain.ClassType]int64{
				domain.ClassSleeper: 0, domain.ClassAC3Tier: 0,
				domain.ClassAC2Tier: 975, domain.ClassACFirstClass: 1850,
			},
		},
		{
			ID: "t3", Name: "Duronto Express", Number: "12213",
			From: st[0], To: st[4],
			DepartureTime: "22:15", ArrivalTime: "07:40",
			Duration: "33h 25m", Distance: "2150 km",
			AvailableSeats: map[domain.ClassType]int{
				domain.ClassSleeper: 86, domain.ClassAC3Tier: 43,
				domain.ClassAC2Tier: 20, domain.ClassACFirstClass: 8,
			},
			Fare: map[domain.ClassType]int64{
				domain.ClassSleeper: 1150, domain.ClassAC3Tier: 2950,
				domain.ClassAC2Tier: 4320, domain.ClassACFirstClass: 7250,
			},
		},
		{
			ID: "t4", Name: "Vande Bharat Express", Number: "22439",
			From: st[0], To: st[7],
			DepartureTime: "08:00", ArrivalTime: "14:00",
			Duration: "6h 00m", Distance: "512 km",
			AvailableSeats: map[domain.ClassType]int{
				domain.ClassSleeper: 0, domain.ClassAC3Tier: 0,
				domain.ClassAC2Tier: 48, domain.ClassACFirstClass: 24,
			},
			Fare: map[domain.ClassType]int64{
				domain.ClassSleeper: 0, domain.ClassAC3Tier: 0,
				domain.ClassAC2Tier: 1250, domain.ClassACFirstClass: 2200,
			},
		},
		{
			ID: "t5", Name: "Tejas Express", Number: "82501",
			From: st[1], To: st[5],
			DepartureTime: "06:40", ArrivalTime: "13:10",
			Duration: "6h 30m", Distance: "493 km",
			AvailableSeats: map[domain.ClassType]int{
				domain.ClassSleeper: 0, domain.ClassAC3Tier: 35,
				domain.ClassAC2Tier: 22, domain.ClassACFirstClass: 0,
			},
			Fare: map[domain.ClassType]int64{
				domain.ClassSleeper: 0, domain.ClassAC3Tier: 1380,
				domain.ClassAC2Tier: 2350, domain.ClassACFirstClass: 0,
			},
		},
	}
}

func SeedPaymentMethods() []models.PaymentMethod {
	return []models.PaymentMethod{
		{ID: "pm1", Type: domain.MethodCard, Name: "Credit/Debit Card", Icon: "credit-card"},
		{ID: "pm2", Type: domain.MethodUPI, Name: "UPI", Icon: "smartphone"},
		{ID: "pm3", Type: domain.MethodNetBanking, Name: "Net Banking", Icon: "building-bank"},
		{ID: "pm4", Type: domain.MethodWallet, Name: "Mobile Wallets", Icon: "wallet"},
	}
}

// SeedUsers hashes the demo credentials at boot; this is the stub credential
// check the login endpoint works against.
func SeedUsers() []UserRecord {
	return []UserRecord{
		{
			User: models.User{
				ID: "u1", Name: "Rahul Sharma",
				Email: "rahul.sharma@example.com", Phone: "9876543210",
			},
			PasswordHash: mustHash("traveller123"),
		},
		{
			User: models.User{
				ID: "admin1", Name: "Admin User",
				Email: "admin@railbooker.com", Phone: "9999888877", IsAdmin: true,
			},
			PasswordHash: mustHash("admin123"),
		},
	}
}

func mustHash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("seed password hash failed: %v", err)
	}
	return string(h)
}

// NewSeededCatalog wires the full sample catalog.
func NewSeededCatalog() *CatalogRepo {
	return NewCatalogRepo(SeedStations(), SeedTrains(), SeedPaymentMethods())
}
