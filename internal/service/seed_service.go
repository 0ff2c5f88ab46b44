package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
)

// SeedService наполняет хранилище стартовыми проектами витрины.
type SeedService struct {
	repo ProjectStore
}

// NewSeedService создаёт сервис наполнения.
func NewSeedService(repo ProjectStore) *SeedService {
	return &SeedService{repo: repo}
}

// SeedShowcase вставляет стартовые проекты. Занятые идентификаторы
// пропускаются, так что повторный запуск безопасен.
func (s *SeedService) SeedShowcase(ctx context.Context) (int, error) {
	inserted := 0
	for _, project := range showcaseProjects() {
		p := project
		if err := s.repo.Create(ctx, &p); err != nil {
			if errors.Is(err, repository.ErrProjectIDExists) {
				continue
			}
			return inserted, fmt.Errorf("seed service: вставка проекта %d: %w", p.ProjectID, err)
		}
		inserted++
	}
	return inserted, nil
}

// showcaseProjects возвращает стартовый набор записей витрины.
func showcaseProjects() []models.Project {
	return []models.Project{
		{
			ProjectID:   0,
			Title:       "G-Mart",
			Subtitle:    "React Based E-Commerce Platform",
			Period:      "2024 - Present",
			Description: "A full-stack e-commerce platform built with the MERN stack, featuring user authentication, product management, and a smooth shopping experience.",
			Image:       "/project-gmart.svg",
			Technologies: pq.StringArray{
				"React", "Node.js", "Express.js", "MongoDB", "Tailwind CSS",
			},
			Features: pq.StringArray{
				"User Authentication & Authorization",
				"Product Management System",
				"Advanced Search & Filtering",
				"Shopping Cart Functionality",
				"Product Reviews & Ratings",
				"Category-based Organization",
				"Responsive Design",
			},
			GitHub: "https://github.com/subashsg7777",
			Demo:   "#",
			Icon:   "FaShoppingCart",
			Color:  "from-blue-500 to-cyan-500",
		},
		{
			ProjectID:   1,
			Title:       "Servify",
			Subtitle:    "MERN Based Auction Platform",
			Period:      "2025 - Present",
			Description: "A comprehensive bidding platform that connects clients with skilled professionals through real-time bidding and automated notifications.",
			Image:       "/project-servify.svg",
			Technologies: pq.StringArray{
				"React", "Node.js", "Express.js", "MongoDB", "Real-time Communication",
			},
			Features: pq.StringArray{
				"Real-time Bidding System",
				"User Authentication & OTP Verification",
				"Project Posting & Management",
				"Automated Email Notifications",
				"Professional Profile Management",
				"Bid Tracking & History",
				"Secure Payment Integration",
			},
			GitHub: "https://github.com/subashsg7777",
			Demo:   "#",
			Icon:   "FaGavel",
			Color:  "from-purple-500 to-pink-500",
		},
		{
			ProjectID:   2,
			Title:       "SG_Disposals",
			Subtitle:    "Comprehensive Waste Management Platform",
			Period:      "2025 - Present",
			Description: "A comprehensive waste management platform that empowers clients to schedule eco-friendly disposal services with real-time tracking, secure verification, and automated notifications.",
			Image:       "/project-sgdisposals.svg",
			Technologies: pq.StringArray{
				"React", "Node.js", "Express.js", "MongoDB", "RESTful APIs", "Real-time Communication",
			},
			Features: pq.StringArray{
				"Service Booking & Scheduling",
				"Real-time Disposal Tracking",
				"User Authentication & OTP Verification",
				"Automated Email Notifications",
				"Eco-Friendly Recycling Management",
				"Customer Profile & History Management",
				"Secure Payment Integration",
				"Location-based Pincode-to-State Conversion",
				"GST-Compliant Tax Calculations",
			},
			GitHub: "https://github.com/subashsg7777",
			Demo:   "#",
			Icon:   "FaRecycle",
			Color:  "from-green-500 to-emerald-500",
		},
		{
			ProjectID:   3,
			Title:       "BOLT & BROOK",
			Subtitle:    "Full-Stack E-Commerce Platform",
			Period:      "2024 - 2025",
			Description: "Developed a full-stack e-commerce platform for selling dresses, featuring a seamless shopping experience and integrated Razorpay payment gateway (test mode).",
			Image:       "/project-boltbrook.svg",
			Technologies: pq.StringArray{
				"React", "Node.js", "Express.js", "MongoDB", "Razorpay Payment Gateway",
			},
			Features: pq.StringArray{
				"Product Listing & Categorization",
				"Shopping Cart & Checkout Flow",
				"User Authentication & Secure Login",
				"Razorpay Payment Integration (Test Mode)",
				"Order Management & Tracking",
				"Responsive UI/UX Design",
				"Admin Dashboard for Product & Inventory Management",
			},
			GitHub: "https://github.com/subashsg7777",
			Demo:   "#",
			Icon:   "FaShoppingBag",
			Color:  "from-pink-500 to-rose-500",
		},
	}
}
