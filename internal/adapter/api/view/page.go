package view

import (
	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/usecase"
)

// Page is the data every template receives.
type Page struct {
	Title   string
	Session entity.Session
	CSRF    string
	Active  string
	Nav     []NavItem
	Data    interface{}
}

type NavItem struct {
	Key   string
	Label string
	Href  string
}

const NavDashboard = "dashboard"

// Nav lists the sidebar entries: the dashboard, then every resource.
func Nav() []NavItem {
	items := []NavItem{{Key: NavDashboard, Label: "Dashboard", Href: "/admin"}}
	for _, r := range usecase.Resources() {
		items = append(items, NavItem{Key: r.Key, Label: r.NavLabel, Href: "/admin/" + r.Key})
	}
	return items
}

type LoginForm struct {
	Email  string
	Error  string
	Reason string
}

// ResourcePage is the shell of a live list page. Rows arrive over the
// websocket at Socket.
type ResourcePage struct {
	Key           string
	Title         string
	Columns       []string
	Socket        string
	HasEditor     bool
	ConfirmDelete string
}

// Rows is the data of the "rows" partial.
type Rows struct {
	Key     string
	Columns int
	Rows    []Row
}

type Landing struct {
	Stats entity.UserStats
}

type Loading struct {
	RefreshSeconds int
}

type ErrorPage struct {
	Status  int
	Message string
	Back    string
}
