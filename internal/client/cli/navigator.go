package cli

import (
	"slices"
	"strconv"
)

const (
	routeHome           = "/"
	routeLogin          = "/login"
	routeRegister       = "/register"
	routeNewVacancy     = "/vacancies/new"
	routeMyApplications = "/my-applications"
	routeApplications   = "/applications"
)

func routeVacancy(id int64) string     { return "/vacancies/" + strconv.FormatInt(id, 10) }
func routeEditVacancy(id int64) string { return "/vacancies/edit/" + strconv.FormatInt(id, 10) }

// Navigator is the route history of the session. The zero value is not
// usable; use NewNavigator.
type Navigator struct {
	history []string
}

func NewNavigator(start string) *Navigator {
	return &Navigator{history: []string{start}}
}

func (n *Navigator) Current() string {
	return n.history[len(n.history)-1]
}

// Push appends route unless it is already current.
func (n *Navigator) Push(route string) {
	if n.Current() == route {
		return
	}
	n.history = append(n.history, route)
}

// Replace swaps the current route, so Back skips it.
func (n *Navigator) Replace(route string) {
	n.history[len(n.history)-1] = route
}

// Back pops the current route. It returns false when already at the first
// entry.
func (n *Navigator) Back() bool {
	if len(n.history) == 1 {
		return false
	}
	n.history = n.history[:len(n.history)-1]
	return true
}

func (n *Navigator) History() []string {
	return slices.Clone(n.history)
}
