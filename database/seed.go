package database

import (
	"chainlearn/models"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedData inserts the base catalog. Rows are keyed by fixed IDs, so
// repeated startups leave existing data untouched.
func SeedData(db *gorm.DB) {
	tracks := []models.Track{
		{
			ID:           "track-blockchain-101",
			Title:        "Blockchain Fundamentals",
			Description:  "Learn the basics of blockchain technology, Bitcoin, Ethereum, and distributed ledgers.",
			Category:     "Fundamentals",
			Difficulty:   "beginner",
			TotalLessons: 8,
		},
		{
			ID:           "track-solidity-dev",
			Title:        "Smart Contract Development",
			Description:  "Master Solidity and create production-ready smart contracts on Ethereum.",
			Category:     "Development",
			Difficulty:   "intermediate",
			TotalLessons: 12,
			IsPaid:       true,
			Price:        99,
		},
		{
			ID:           "track-web3-frontend",
			Title:        "Web3 Frontend Development",
			Description:  "Build decentralized applications with wallet integration and Web3 libraries.",
			Category:     "Development",
			Difficulty:   "intermediate",
			TotalLessons: 10,
			IsPaid:       true,
			Price:        79,
		},
		{
			ID:           "track-non-tech",
			Title:        "Web3 Non-Technical Roles",
			Description:  "Explore community management, DAO operations, and content strategy roles.",
			Category:     "Non-Technical",
			Difficulty:   "beginner",
			TotalLessons: 7,
		},
		{
			ID:           "track-nft-metaverse",
			Title:        "NFT & Metaverse Fundamentals",
			Description:  "Understand NFTs, metaverse platforms, and Web3 gaming opportunities.",
			Category:     "Web3 Specializations",
			Difficulty:   "beginner",
			TotalLessons: 6,
			IsPaid:       true,
			Price:        49,
		},
	}

	for _, track := range tracks {
		if err := db.Where("id = ?", track.ID).FirstOrCreate(&track).Error; err != nil {
			log.Printf("Error seeding track %s: %v", track.ID, err)
		}
	}

	lessons := []models.Lesson{
		{ID: "lesson-1", TrackID: "track-blockchain-101", Title: "What is Blockchain?", OrderIndex: 1, Level: "beginner"},
		{ID: "lesson-2", TrackID: "track-blockchain-101", Title: "Bitcoin vs Ethereum", OrderIndex: 2, Level: "beginner"},
		{ID: "lesson-3", TrackID: "track-blockchain-101", Title: "Smart Contracts Explained", OrderIndex: 3, Level: "beginner"},
		{ID: "lesson-4", TrackID: "track-solidity-dev", Title: "Solidity Syntax Basics", OrderIndex: 1, Level: "intermediate"},
		{ID: "lesson-5", TrackID: "track-solidity-dev", Title: "Writing Your First Contract", OrderIndex: 2, Level: "intermediate"},
		{ID: "lesson-6", TrackID: "track-web3-frontend", Title: "Connecting MetaMask", OrderIndex: 1, Level: "intermediate"},
		{ID: "lesson-7", TrackID: "track-web3-frontend", Title: "Building dApps with Ethers.js", OrderIndex: 2, Level: "intermediate"},
		{ID: "lesson-8", TrackID: "track-non-tech", Title: "Community Management in DAOs", OrderIndex: 1, Level: "beginner"},
		{ID: "lesson-9", TrackID: "track-non-tech", Title: "Content Strategy for Web3", OrderIndex: 2, Level: "beginner"},
		{ID: "lesson-10", TrackID: "track-nft-metaverse", Title: "Understanding NFTs", OrderIndex: 1, Level: "beginner"},
	}

	for _, lesson := range lessons {
		if err := db.Where("id = ?", lesson.ID).FirstOrCreate(&lesson).Error; err != nil {
			log.Printf("Error seeding lesson %s: %v", lesson.ID, err)
		}
	}

	jobs := []models.Job{
		{
			ID:             "job-1",
			Title:          "Solidity Developer",
			Company:        "Uniswap",
			Description:    "Build and maintain core smart contracts for DeFi platform.",
			Category:       "Developer",
			SalaryMin:      120000,
			SalaryMax:      180000,
			RequiredSkills: datatypes.JSON(`["Solidity","Smart Contracts","Ethereum"]`),
			IsActive:       true,
		},
		{
			ID:             "job-2",
			Title:          "Community Manager",
			Company:        "Aave",
			Description:    "Lead community engagement and governance discussions.",
			Category:       "Community Manager",
			SalaryMin:      60000,
			SalaryMax:      100000,
			RequiredSkills: datatypes.JSON(`["Community Management","Communication","Web3"]`),
			IsActive:       true,
		},
		{
			ID:             "job-3",
			Title:          "Web3 Frontend Engineer",
			Company:        "OpenSea",
			Description:    "Develop responsive UI for NFT marketplace platform.",
			Category:       "Developer",
			SalaryMin:      100000,
			SalaryMax:      160000,
			RequiredSkills: datatypes.JSON(`["React","Web3.js","JavaScript"]`),
			IsActive:       true,
		},
		{
			ID:             "job-4",
			Title:          "DAO Operator",
			Company:        "MakerDAO",
			Description:    "Manage DAO operations and governance processes.",
			Category:       "DAO Operator",
			SalaryMin:      80000,
			SalaryMax:      140000,
			RequiredSkills: datatypes.JSON(`["DAO","Governance","Web3"]`),
			IsActive:       true,
		},
		{
			ID:             "job-5",
			Title:          "Smart Contract Auditor",
			Company:        "OpenZeppelin",
			Description:    "Audit and secure blockchain applications.",
			Category:       "Smart Contract Auditor",
			SalaryMin:      130000,
			SalaryMax:      200000,
			RequiredSkills: datatypes.JSON(`["Solidity","Security","Smart Contracts"]`),
			IsActive:       true,
		},
	}

	for _, job := range jobs {
		if err := db.Where("id = ?", job.ID).FirstOrCreate(&job).Error; err != nil {
			log.Printf("Error seeding job %s: %v", job.ID, err)
		}
	}
}
