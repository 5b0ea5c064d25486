// Package database provides seeding and health-check utilities for the
// moving scheduling store.
package database

import (
	"fmt"
	"log"
	"time"

	"movesched-backend/models"
	"movesched-backend/utils"

	"gorm.io/gorm"
)

// SeedResult reports how many records each seeding phase created.
type SeedResult struct {
	Customers    int `json:"customers"`
	CrewMembers  int `json:"crew_members"`
	Crews        int `json:"crews"`
	Appointments int `json:"appointments"`
}

// SeedCustomers seeds sample customers. Customers whose phone number already
// exists are skipped, so re-running is safe.
func SeedCustomers(db *gorm.DB) ([]models.Customer, error) {
	customersData := []models.Customer{
		{Name: "John Smith", Phone: "555-0101", Email: "john.smith@email.com", Address: "123 Main St, Anytown, ST 12345"},
		{Name: "Sarah Johnson", Phone: "555-0102", Email: "sarah.johnson@email.com", Address: "456 Oak Ave, Somewhere, ST 12346"},
		{Name: "Michael Brown", Phone: "555-0103", Email: "michael.brown@email.com", Address: "789 Pine Rd, Elsewhere, ST 12347"},
		{Name: "Emily Davis", Phone: "555-0104", Email: "emily.davis@email.com", Address: "321 Elm St, Nowhere, ST 12348"},
		{Name: "David Wilson", Phone: "555-0105", Email: "david.wilson@email.com", Address: "654 Maple Dr, Anywhere, ST 12349"},
	}

	var created []models.Customer
	for _, data := range customersData {
		var existing models.Customer
		err := db.Where("phone = ?", data.Phone).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return created, err
		}
		customer := data
		if err := db.Create(&customer).Error; err != nil {
			return created, err
		}
		created = append(created, customer)
		log.Printf("Created customer: %s", customer.Name)
	}
	return created, nil
}

// SeedCrewMembers seeds sample crew members, skipping existing phone numbers.
func SeedCrewMembers(db *gorm.DB) ([]models.CrewMember, error) {
	membersData := []models.CrewMember{
		{Name: "Mike Rodriguez", Phone: "555-1001", Email: "mike.rodriguez@movingco.com", Position: "Team Lead", IsActive: true},
		{Name: "James Thompson", Phone: "555-1002", Email: "james.thompson@movingco.com", Position: "Mover", IsActive: true},
		{Name: "Carlos Martinez", Phone: "555-1003", Email: "carlos.martinez@movingco.com", Position: "Mover", IsActive: true},
		{Name: "Robert Lee", Phone: "555-1004", Email: "robert.lee@movingco.com", Position: "Driver", IsActive: true},
		{Name: "Anthony Garcia", Phone: "555-1005", Email: "anthony.garcia@movingco.com", Position: "Mover", IsActive: true},
	}

	var created []models.CrewMember
	for _, data := range membersData {
		var existing models.CrewMember
		err := db.Where("phone = ?", data.Phone).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return created, err
		}
		member := data
		if err := db.Create(&member).Error; err != nil {
			return created, err
		}
		created = append(created, member)
		log.Printf("Created crew member: %s", member.Name)
	}
	return created, nil
}

// SeedCrews seeds sample crews, assigning 2-3 members per crew from the pool.
// Crews whose name already exists are skipped.
func SeedCrews(db *gorm.DB, crewMembers []models.CrewMember) ([]models.Crew, error) {
	if len(crewMembers) < 4 {
		log.Println("Not enough crew members to create sample crews")
		return nil, nil
	}

	crewsData := []models.Crew{
		{Name: "Alpha Team", Description: "Primary moving crew for residential moves", IsActive: true},
		{Name: "Beta Team", Description: "Secondary crew for commercial and large moves", IsActive: true},
	}

	var created []models.Crew
	for i, data := range crewsData {
		var existing models.Crew
		err := db.Where("name = ?", data.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return created, err
		}

		crew := data
		startIdx := i * 2
		endIdx := startIdx + 3
		if endIdx > len(crewMembers) {
			endIdx = len(crewMembers)
		}
		for j := startIdx; j < endIdx; j++ {
			member := crewMembers[j]
			crew.Members = append(crew.Members, &member)
		}

		if err := db.Create(&crew).Error; err != nil {
			return created, err
		}
		created = append(created, crew)
		log.Printf("Created crew: %s", crew.Name)
	}
	return created, nil
}

// SeedAppointments seeds 10 appointments over the next 30 days, round-robin
// across the given customers and crews. There is no existence guard, so
// re-running after appointments exist produces duplicates.
func SeedAppointments(db *gorm.DB, customers []models.Customer, crews []models.Crew) ([]models.Appointment, error) {
	if len(customers) == 0 || len(crews) == 0 {
		log.Println("No customers or crews available for creating appointments")
		return nil, nil
	}

	// Note: "confirmed" is outside the set accepted by the status-transition
	// endpoint; seeded records carry it anyway.
	statuses := []string{models.StatusScheduled, "confirmed", models.StatusInProgress}
	baseDate := utils.BeginningOfDay(time.Now())

	var created []models.Appointment
	for i := 0; i < 10; i++ {
		appointmentTime, err := models.ParseTime(fmt.Sprintf("%02d:00", 9+i%8)) // 9 AM to 4 PM
		if err != nil {
			return created, err
		}

		customer := customers[i%len(customers)]
		crewID := crews[i%len(crews)].ID
		duration := 120 + (i%3)*60 // 2-4 hours
		cost := 300.0 + float64(i)*50.0

		appointment := models.Appointment{
			CustomerID:         customer.ID,
			CrewID:             &crewID,
			AppointmentDate:    models.NewDateOnly(baseDate.AddDate(0, 0, i+1)),
			AppointmentTime:    appointmentTime,
			EstimatedDuration:  &duration,
			OriginAddress:      fmt.Sprintf("%d Source St, Origin City, ST 1000%d", 100+i*10, i),
			DestinationAddress: fmt.Sprintf("%d Dest Ave, Destination City, ST 2000%d", 200+i*10, i),
			Status:             statuses[i%3],
			Notes:              fmt.Sprintf("Sample appointment #%d - Handle with care", i+1),
			EstimatedCost:      &cost,
		}

		if err := db.Create(&appointment).Error; err != nil {
			return created, err
		}
		created = append(created, appointment)
		log.Printf("Created appointment for %s", appointment.AppointmentDate)
	}
	return created, nil
}

// SeedAll seeds all sample data in dependency order.
func SeedAll(db *gorm.DB) (SeedResult, error) {
	log.Println("Starting database seeding...")

	customers, err := SeedCustomers(db)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seeding customers: %w", err)
	}
	crewMembers, err := SeedCrewMembers(db)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seeding crew members: %w", err)
	}
	crews, err := SeedCrews(db, crewMembers)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seeding crews: %w", err)
	}
	appointments, err := SeedAppointments(db, customers, crews)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seeding appointments: %w", err)
	}

	result := SeedResult{
		Customers:    len(customers),
		CrewMembers:  len(crewMembers),
		Crews:        len(crews),
		Appointments: len(appointments),
	}
	log.Printf("Database seeding completed: %d customers, %d crew members, %d crews, %d appointments",
		result.Customers, result.CrewMembers, result.Crews, result.Appointments)
	return result, nil
}

// ClearAll deletes all data in strict reverse dependency order within one
// transaction; any failure rolls the whole clear back.
func ClearAll(db *gorm.DB) error {
	log.Println("Clearing all database data...")
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.CrewMembership{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Crew{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.CrewMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Customer{}).Error; err != nil {
			return err
		}
		return nil
	})
}
