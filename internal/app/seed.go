package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"wistara_backend/internal/logger"
	"wistara_backend/internal/models"
	"wistara_backend/internal/repositories"
	"wistara_backend/internal/services"
)

// pseudoUsers is the fixed author pool for synthetic reviews. Seeding is
// idempotent: existing usernames are left untouched.
var pseudoUsers = []models.User{
	{Name: "Adi Bayu Pramana", Username: "AdiBayu", Email: "adi.bayu@gmail.com", Avatar: "https://i.pravatar.cc/150?img=12"},
	{Name: "Putri Ayu Wulandari", Username: "Putri_Traveler", Email: "putri.ayu@gmail.com", Avatar: "https://i.pravatar.cc/150?img=5"},
	{Name: "Rian Kurniawan", Username: "WanderlustRian", Email: "rian.wanderlust@gmail.com", Avatar: "https://i.pravatar.cc/150?img=11"},
	{Name: "Andi Setiawan", Username: "AndiPenjelajah", Email: "andi.explorer@gmail.com", Avatar: "https://i.pravatar.cc/150?img=8"},
	{Name: "Sari Permatasari", Username: "SariWisata", Email: "sari.travel@gmail.com", Avatar: "https://i.pravatar.cc/150?img=25"},
	{Name: "Budi Santoso", Username: "BudiAdventure", Email: "budi.adventure@gmail.com", Avatar: "https://i.pravatar.cc/150?img=15"},
	{Name: "Dewi Anggraini", Username: "DewiCulinary", Email: "dewi.culinary@gmail.com", Avatar: "https://i.pravatar.cc/150?img=9"},
	{Name: "Novan Pratama", Username: "NovanHiker", Email: "novan.hiker@gmail.com", Avatar: "https://i.pravatar.cc/150?img=59"},
}

// seedDestinations is the starter catalog. Like the user pool it is only
// inserted into an empty table.
var seedDestinations = []models.Destination{
	{ID: "borobudur", Name: "Borobudur Temple", Region: "Magelang", Category: "Temples"},
	{ID: "raja-ampat", Name: "Raja Ampat Islands", Region: "West Papua", Category: "Islands"},
	{ID: "bali-ubud", Name: "Ubud", Region: "Bali", Category: "Villages"},
	{ID: "bromo", Name: "Mount Bromo", Region: "East Java", Category: "Mountains"},
	{ID: "komodo", Name: "Komodo National Park", Region: "East Nusa Tenggara", Category: "Islands"},
	{ID: "toba", Name: "Lake Toba", Region: "North Sumatra", Category: "Mountains"},
	{ID: "bunaken", Name: "Bunaken Marine Park", Region: "North Sulawesi", Category: "Beaches"},
	{ID: "tana-toraja", Name: "Tana Toraja", Region: "South Sulawesi", Category: "Villages"},
	{ID: "wakatobi", Name: "Wakatobi Islands", Region: "Southeast Sulawesi", Category: "Islands"},
	{ID: "prambanan", Name: "Prambanan Temple", Region: "Yogyakarta", Category: "Temples"},
	{ID: "lombok", Name: "Lombok Island", Region: "West Nusa Tenggara", Category: "Islands"},
	{ID: "derawan", Name: "Derawan Islands", Region: "East Kalimantan", Category: "Islands"},
}

func seedPseudoUsers(db *gorm.DB, userRepo repositories.UserRepository) error {
	count, err := userRepo.CountUsers(db)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		logger.Info("user table already populated, skipping pseudo-user seeding", "count", count)
		return nil
	}

	for i := range pseudoUsers {
		user := pseudoUsers[i]
		user.Role = models.UserRoleUser
		if err := userRepo.CreateUser(db, &user); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", user.Username, err)
		}
	}
	logger.Info("seeded pseudo-user pool", "count", len(pseudoUsers))
	return nil
}

func seedDestinationCatalog(db *gorm.DB, destinationRepo repositories.DestinationRepository) error {
	count, err := destinationRepo.CountDestinations(db)
	if err != nil {
		return fmt.Errorf("failed to count destinations: %w", err)
	}
	if count > 0 {
		logger.Info("destination table already populated, skipping catalog seeding", "count", count)
		return nil
	}

	for i := range seedDestinations {
		destination := seedDestinations[i]
		if err := destinationRepo.CreateDestination(db, &destination); err != nil {
			return fmt.Errorf("failed to seed destination %q: %w", destination.ID, err)
		}
	}
	logger.Info("seeded destination catalog", "count", len(seedDestinations))
	return nil
}

// seedReviewsOnStartup runs the bulk generator once, when the review table is
// still empty and the config asks for it.
func seedReviewsOnStartup(ctx context.Context, db *gorm.DB, reviewRepo repositories.ReviewRepository, generator services.GeneratorService) error {
	count, err := reviewRepo.CountReviews(db)
	if err != nil {
		return fmt.Errorf("failed to count reviews: %w", err)
	}
	if count > 0 {
		logger.Info("review table already populated, skipping startup seeding", "count", count)
		return nil
	}

	result, err := generator.SeedReviews(ctx, db)
	if err != nil {
		return fmt.Errorf("startup review seeding failed: %w", err)
	}
	logger.Info("startup review seeding finished",
		"reviews_created", result.ReviewsCreated,
		"destinations_affected", result.DestinationsAffected,
	)
	return nil
}
