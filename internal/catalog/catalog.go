// Package catalog содержит фиксированные коллекции курсов и пользователей,
// а также чистые функции: поиск курса, поиск пользователя по учётным данным,
// проверку промокода и расчёт цены со скидкой.
//
// Коллекции задаются при старте процесса и никогда не изменяются,
// поэтому пакет не требует синхронизации.
package catalog

import (
	"strings"

	"github.com/asmolenkov/course-catalog/internal/models"
)

const (
	// PromoCode — единственный действующий промокод распродажи.
	PromoCode = "BFSALE25"
	// PromoDiscount — доля скидки, применяемая по промокоду.
	PromoDiscount = 0.5
)

var users = []models.User{
	{
		ID:       "user-1",
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	},
	{
		ID:       "user-2",
		Name:     "Jane Smith",
		Email:    "jane@example.com",
		Password: "password456",
	},
	{
		ID:       "user-3",
		Name:     "Demo User",
		Email:    "demo@example.com",
		Password: "demo123",
	},
}

var courses = []models.Course{
	{
		ID:          "course-1",
		Title:       "React Masterclass",
		Description: "Learn React from scratch to advanced concepts",
		FullDescription: "This comprehensive React course covers everything from basic concepts " +
			"like components and state management to advanced topics like hooks, context API, " +
			"and performance optimization. Perfect for developers looking to master modern React development.",
		Price: 99.99,
		Image: "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=800&auto=format&fit=crop&q=60",
	},
	{
		ID:          "course-2",
		Title:       "TypeScript Fundamentals",
		Description: "Master TypeScript for better JavaScript development",
		FullDescription: "Dive deep into TypeScript and learn how to write type-safe JavaScript. " +
			"This course covers types, interfaces, generics, decorators, and integration with popular " +
			"frameworks. Build more maintainable and scalable applications.",
		Price: 79.99,
		Image: "https://images.unsplash.com/photo-1516116216624-53e697fedbea?w=800&auto=format&fit=crop&q=60",
	},
	{
		ID:          "course-3",
		Title:       "Web Development Basics",
		Description: "Start your coding journey with HTML, CSS & JavaScript",
		FullDescription: "A beginner-friendly course that teaches the fundamentals of web development. " +
			"Learn HTML for structure, CSS for styling, and JavaScript for interactivity. " +
			"Build real projects and kickstart your developer career.",
		Price: 0,
		Image: "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=800&auto=format&fit=crop&q=60",
	},
	{
		ID:          "course-4",
		Title:       "Node.js Backend Development",
		Description: "Build scalable backend applications with Node.js",
		FullDescription: "Learn server-side JavaScript with Node.js. This course covers Express.js, " +
			"REST APIs, database integration, authentication, and deployment. " +
			"Build production-ready backend applications from scratch.",
		Price: 89.99,
		Image: "https://images.unsplash.com/photo-1627398242454-45a1465c2479?w=800&auto=format&fit=crop&q=60",
	},
	{
		ID:          "course-5",
		Title:       "CSS & Tailwind Mastery",
		Description: "Create stunning UIs with modern CSS techniques",
		FullDescription: "Master CSS from fundamentals to advanced techniques including Flexbox, Grid, " +
			"animations, and responsive design. Also learn Tailwind CSS for rapid UI development. " +
			"Create beautiful, modern user interfaces.",
		Price: 0,
		Image: "https://images.unsplash.com/photo-1507721999472-8ed4421c4af2?w=800&auto=format&fit=crop&q=60",
	},
	{
		ID:          "course-6",
		Title:       "Full-Stack JavaScript",
		Description: "Become a complete JavaScript developer",
		FullDescription: "The ultimate full-stack course covering React, Node.js, MongoDB, and deployment. " +
			"Build complete web applications from frontend to backend. Includes real-world projects " +
			"and best practices for modern development.",
		Price: 149.99,
		Image: "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=800&auto=format&fit=crop&q=60",
	},
}

// Courses возвращает копию списка всех курсов каталога.
func Courses() []models.Course {
	out := make([]models.Course, len(courses))
	copy(out, courses)
	return out
}

// FindCourse выполняет линейный поиск курса по идентификатору.
// Возвращает копию найденной записи.
func FindCourse(id string) (*models.Course, bool) {
	for i := range courses {
		if courses[i].ID == id {
			c := courses[i]
			return &c, true
		}
	}
	return nil, false
}

// FindUserByEmail возвращает пользователя с указанной почтой.
func FindUserByEmail(email string) (*models.User, bool) {
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, true
		}
	}
	return nil, false
}

// FindUserByCredentials возвращает пользователя, у которого почта и пароль
// совпадают посимвольно. Неизвестная почта и неверный пароль неразличимы
// для вызывающего.
func FindUserByCredentials(email, password string) (*models.User, bool) {
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			u := users[i]
			return &u, true
		}
	}
	return nil, false
}

// ValidatePromoCode проверяет промокод без учёта регистра.
func ValidatePromoCode(code string) bool {
	return strings.EqualFold(code, PromoCode)
}

// DiscountedPrice возвращает цену с учётом промокода: для платного курса
// при применённом промокоде цена уменьшается на долю PromoDiscount,
// бесплатный курс остаётся бесплатным.
func DiscountedPrice(price float64, promoApplied bool) float64 {
	if promoApplied && price > 0 {
		return price * (1 - PromoDiscount)
	}
	return price
}
