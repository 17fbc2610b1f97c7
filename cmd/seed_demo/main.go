package main

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/xelth-com/eckshop/internal/config"
	"github.com/xelth-com/eckshop/internal/database"
	"github.com/xelth-com/eckshop/internal/logger"
	"github.com/xelth-com/eckshop/internal/models"
	"github.com/xelth-com/eckshop/internal/services/classifier"
	"github.com/xelth-com/eckshop/internal/services/hardware"
)

func main() {
	fmt.Println("🌱 eckShop Demo Data Seeder")
	fmt.Println(strings.Repeat("=", 60))

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, "console", "seed-demo")
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database, zl)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Println("✅ Connected to database")

	fmt.Println("🔨 Running database migrations...")
	if err := db.Migrate(); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	fmt.Println("✅ Migrations complete")
	fmt.Println()

	// Check if data already exists
	var orderCount int64
	if err := db.Model(&models.WorkOrder{}).Count(&orderCount).Error; err != nil {
		log.Fatalf("❌ Failed to count work orders: %v", err)
	}
	if orderCount > 0 {
		fmt.Printf("⚠️  Database already has %d work orders. Clear it first? (y/N): ", orderCount)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("❌ Aborted. Database not modified.")
			return
		}

		fmt.Println("🗑️  Clearing existing data...")
		if err := clearDemoTables(db.DB); err != nil {
			log.Fatalf("❌ Failed to clear data: %v", err)
		}
		fmt.Println("✅ Data cleared")
	}

	// 1. Racks, one or more per rack type
	fmt.Println("🗄️  Creating racks...")
	racks := []models.Rack{
		{Name: "Carcass A", Prefix: "CA", Type: classifier.RackStandard, Columns: 6, Rows: 4, SortOrder: 1},
		{Name: "Carcass B", Prefix: "CB", Type: classifier.RackStandard, Columns: 6, Rows: 4, SortOrder: 2},
		{Name: "Fronts", Prefix: "DF", Type: classifier.RackDoorsDrawerFronts, Columns: 10, Rows: 3, SortOrder: 3},
		{Name: "Shelves", Prefix: "AS", Type: classifier.RackAdjustableShelves, Columns: 4, Rows: 6, SortOrder: 4},
		{Name: "Hardware bins", Prefix: "HW", Type: classifier.RackHardware, Columns: 8, Rows: 5, SortOrder: 5},
		{Name: "Cart 1", Prefix: "C1", Type: classifier.RackCart, Columns: 1, Rows: 3, SortOrder: 6},
	}
	for _, r := range racks {
		if err := db.Create(&r).Error; err != nil {
			log.Printf("⚠️  Failed to create rack %s: %v", r.Name, err)
		} else {
			fmt.Printf("   ✓ Created rack: [%s] %s (%s, %d slots)\n", r.Prefix, r.Name, r.Type, r.Capacity())
		}
	}
	fmt.Printf("✅ Created %d racks\n\n", len(racks))

	// 2. Work orders with parts and hardware.
	// Hinges use one record per unit, cam locks one record with the full quantity.
	fmt.Println("📋 Creating work orders...")
	orders := []models.WorkOrder{
		{
			Customer: "Kitchen Meyer",
			Notes:    "Base cabinets, oak fronts",
			Metadata: datatypes.JSON(`{"source":"demo","line":"kitchen"}`),
			Parts: []models.Part{
				{Name: "Side Panel Left", Status: models.PartStatusDone},
				{Name: "Side Panel Right", Status: models.PartStatusDone},
				{Name: "Bottom", Status: models.PartStatusCut},
				{Name: "Door Panel 600", Status: models.PartStatusPending},
				{Name: "Drawer Front 400", Status: models.PartStatusPending},
				{Name: "Adj Shelf 560", Status: models.PartStatusPending},
			},
			Hardware: []models.HardwareItem{
				{Name: "Hinge 110", Quantity: 1, Status: hardware.StatusPending},
				{Name: "Hinge 110", Quantity: 1, Status: hardware.StatusPending},
				{Name: "Hinge 110", Quantity: 1, Status: hardware.StatusPending},
				{Name: "Hinge 110", Quantity: 1, Status: hardware.StatusPending},
				{Name: "Cam lock", Quantity: 16, Status: hardware.StatusShipped},
				{Name: "Handle 128", Quantity: 2, Status: hardware.StatusPending},
			},
		},
		{
			Customer: "Office Wagner",
			Notes:    "Wardrobe, fixed shelves",
			Metadata: datatypes.JSON(`{"source":"demo","line":"wardrobe"}`),
			Parts: []models.Part{
				{Name: "Top Panel", Status: models.PartStatusDone},
				{Name: "Back Panel", Status: models.PartStatusDone},
				{Name: "Fixed Shelf", Status: models.PartStatusDone},
				{Name: "Adjustable Shelf 800", Status: models.PartStatusCut},
			},
			Hardware: []models.HardwareItem{
				{Name: "Shelf support", Quantity: 1, Status: hardware.StatusShipped},
				{Name: "Shelf support", Quantity: 3, Status: hardware.StatusShipped},
				{Name: "Leveler", Quantity: 4, Status: hardware.StatusPending},
			},
		},
	}
	for _, wo := range orders {
		if err := db.Create(&wo).Error; err != nil {
			log.Printf("⚠️  Failed to create work order for %s: %v", wo.Customer, err)
			continue
		}
		fmt.Printf("   ✓ Created work order: %s (%s) with %d parts, %d hardware items\n",
			wo.Number, wo.Customer, len(wo.Parts), len(wo.Hardware))
	}
	fmt.Printf("✅ Created %d work orders\n\n", len(orders))

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("🎉 Demo data seeded. Try:")
	fmt.Println("   GET /api/work-orders/{id}/routing")
	fmt.Println("   GET /api/work-orders/{id}/hardware")
}

// demoTables are emptied before reseeding, children first
var demoTables = []string{"hardware_items", "parts", "work_orders", "racks"}

// clearDemoTables truncates every demo table and stops at the first failure
func clearDemoTables(db *gorm.DB) error {
	for _, table := range demoTables {
		if err := db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error; err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}
