// seed puebla la base con datos de ejemplo: clientes, materiales, kits y un
// plan de empaque. Idempotente: si ya existen kits no hace nada.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que el servidor (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/edukits/kittrack-api/internal/domain/entity"
	"github.com/edukits/kittrack-api/internal/infrastructure/postgres"
	"github.com/edukits/kittrack-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	kitRepo := postgres.NewKitRepository(pool)
	existing, err := kitRepo.List(1, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verificar kits: %v\n", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		fmt.Println("La base ya tiene datos; no se siembra nada.")
		return
	}

	now := time.Now()
	clientRepo := postgres.NewClientRepository(pool)
	rawRepo := postgres.NewRawMaterialRepository(pool)
	preRepo := postgres.NewPreprocessedGoodRepository(pool)
	lineRepo := postgres.NewKitMaterialRepository(pool)

	clients := []*entity.Client{
		{
			ID: uuid.New().String(), Name: "Green Valley Public School",
			ContactPerson: "Anita Kumar", Email: "anita.kumar@gvps.edu",
			Phone: "98765-43210", Address: "12 Palm Street",
			City: "Mumbai", State: "MH", Pincode: "400001",
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "Blue Ridge Academy",
			ContactPerson: "Rahul Verma", Email: "rahul.verma@blueridge.edu",
			Phone: "91234-56780", Address: "98 Hill View Road",
			City: "Pune", State: "MH", Pincode: "411001",
			CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, c := range clients {
		must("cliente "+c.Name, clientRepo.Create(c))
	}

	rawMaterials := []*entity.RawMaterial{
		{
			ID: uuid.New().String(), Name: "EVA Foam Sheet 2mm", Category: "foam",
			StockLevel: 500, Unit: "pieces", Description: "High-density EVA foam for models",
			Supplier: "FoamWorks", UnitPrice: decimal.NewFromInt(10),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "MDF Board 3mm", Category: "mdf",
			StockLevel: 200, Unit: "sheets", Description: "Laser-compatible MDF",
			Supplier: "WoodCraft", UnitPrice: decimal.NewFromInt(80),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "M3 Screws Assorted", Category: "fasteners",
			StockLevel: 1000, Unit: "pieces", Description: "Assortment for assembly",
			Supplier: "BoltHub", UnitPrice: decimal.NewFromInt(2),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "Copper Wire 22AWG", Category: "electronics",
			StockLevel: 300, Unit: "meters", Description: "Flexible stranded wire",
			Supplier: "ElectroMart", UnitPrice: decimal.NewFromInt(5),
			CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, m := range rawMaterials {
		must("materia prima "+m.Name, rawRepo.Create(m))
	}

	preprocessed := []*entity.PreprocessedGood{
		{
			ID: uuid.New().String(), Name: "Laser Cut MDF Gears", Category: "laser_cut",
			StockLevel: 120, Unit: "sets", Description: "Varied gear sizes",
			ProcessingNotes: "Cut on 40W laser", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "3D Printed Servo Brackets", Category: "3d_printed",
			StockLevel: 150, Unit: "pieces", Description: "PLA brackets for micro servos",
			ProcessingNotes: "0.2mm layer height", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "Painted Base Plates", Category: "painted",
			StockLevel: 80, Unit: "pieces", Description: "Primed and painted plates",
			ProcessingNotes: "Acrylic matte", CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, g := range preprocessed {
		must("material procesado "+g.Name, preRepo.Create(g))
	}

	kits := []*entity.Kit{
		{
			ID: uuid.New().String(), Name: "Robotics Starter Kit", SerialNumber: "ROB-001",
			Program: entity.ProgramRobotics, GradeLevel: "6-8",
			Description: "Basics of robotics with servos & gears", StockLevel: 10,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "CSTEM Curious Minds", SerialNumber: "CST-101",
			Program: entity.ProgramCSTEM, GradeLevel: "3-5",
			Description: "Fun experiments for early learners", StockLevel: 15,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), Name: "Advanced Robotics Kit", SerialNumber: "ROB-200",
			Program: entity.ProgramRobotics, GradeLevel: "9-10",
			Description: "Advanced mechanisms and control", StockLevel: 5,
			CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, k := range kits {
		must("kit "+k.Name, kitRepo.Create(k))
	}

	// Plan de empaque del kit de robótica básica
	lines := []*entity.KitMaterial{
		{
			ID: uuid.New().String(), KitID: kits[0].ID,
			MaterialType: entity.MaterialTypeRaw, MaterialID: rawMaterials[0].ID,
			Quantity: 5, PacketNumber: 1, PacketName: "Packet A",
		},
		{
			ID: uuid.New().String(), KitID: kits[0].ID,
			MaterialType: entity.MaterialTypePreprocessed, MaterialID: preprocessed[1].ID,
			Quantity: 2, PacketNumber: 2, PacketName: "Packet B",
		},
	}
	for _, l := range lines {
		must("línea de empaque", lineRepo.Create(l))
	}

	fmt.Printf("Siembra completada: %d clientes, %d materias primas, %d procesados, %d kits.\n",
		len(clients), len(rawMaterials), len(preprocessed), len(kits))
}

func must(what string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "sembrar %s: %v\n", what, err)
		os.Exit(1)
	}
}
