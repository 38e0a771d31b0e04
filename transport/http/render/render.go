package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"bookspace/internal/domains/booking/model"
	"bookspace/shared/constant"
	"bookspace/shared/logger"
	"bookspace/shared/timezone"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var files embed.FS

const (
	layoutFile     = "templates/layout.html"
	componentsFile = "templates/components.html"

	layoutName = "layout"
)

// Page names, one per template file.
const (
	PageDashboard   = "dashboard"
	PageRoomList    = "room_list"
	PageRoomForm    = "room_form"
	PageBookingList = "booking_list"
	PageBookingForm = "booking_form"
	PageHistoryList = "history_list"
)

// Block rendered alone for partial list refreshes.
const BlockRows = "rows"

var pages = []string{
	PageDashboard,
	PageRoomList,
	PageRoomForm,
	PageBookingList,
	PageBookingForm,
	PageHistoryList,
}

type NavItem struct {
	Label  string
	Path   string
	Active bool
}

var nav = []NavItem{
	{Label: "Dashboard", Path: "/"},
	{Label: "Room", Path: "/rooms"},
	{Label: "Booking", Path: "/bookings"},
	{Label: "History", Path: "/histories"},
}

// Page is one full document: the shell around a named content template.
type Page struct {
	Name    string
	Title   string
	Active  string
	Content any
}

type shell struct {
	Title   string
	Nav     []NavItem
	Content any
}

type Badge struct {
	Label string
	Style string
}

type Renderer struct {
	templates map[string]*template.Template
}

func New() *Renderer {
	renderer, err := Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse templates")
	}

	return renderer
}

// Parse builds one template set per page on top of the layout and components.
func Parse() (*Renderer, error) {
	renderer := &Renderer{templates: make(map[string]*template.Template, len(pages))}

	for _, name := range pages {
		tmpl, err := template.New(name).
			Funcs(funcs()).
			ParseFS(files, layoutFile, componentsFile, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		renderer.templates[name] = tmpl
	}

	return renderer, nil
}

// Page writes a whole document. Nothing is written if the template fails.
func (r *Renderer) Page(w http.ResponseWriter, req *http.Request, status int, page Page) {
	data := shell{
		Title:   page.Title,
		Nav:     navItems(page.Active),
		Content: page.Content,
	}

	r.execute(w, req, status, page.Name, layoutName, data)
}

// Partial writes a single block of a page, e.g. the rows of a list.
func (r *Renderer) Partial(w http.ResponseWriter, req *http.Request, status int, name, block string, data any) {
	r.execute(w, req, status, name, block, data)
}

func (r *Renderer) execute(w http.ResponseWriter, req *http.Request, status int, name, block string, data any) {
	tmpl, ok := r.templates[name]
	if !ok {
		logger.Ctx(req.Context()).Error().Str("page", name).Msg("unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, block, data); err != nil {
		logger.Ctx(req.Context()).Error().Err(err).Str("page", name).Str("block", block).Msg("failed to render template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		logger.ErrorWithStack(err)
	}
}

func navItems(active string) []NavItem {
	items := make([]NavItem, len(nav))
	for i, item := range nav {
		item.Active = item.Path == active
		items[i] = item
	}

	return items
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"badge": func(status string) Badge {
			label, style := model.Badge(status)

			return Badge{Label: label, Style: style}
		},
		"bookingDetail": func(booking *model.Booking, dismissURL string) BookingDetail {
			return BookingDetail{Booking: *booking, DismissURL: dismissURL}
		},
		"displayTime": timezone.Display,
		"loadKept": func() string {
			return constant.MessageLoadKept
		},
		"orDash": func(value string) string {
			if value == "" {
				return constant.MessageNotAvailable
			}

			return value
		},
	}
}

// RowsRequest reports whether req asks for the rows fragment only, and the
// sequence tag the page script attached to it.
func RowsRequest(req *http.Request) (uint64, bool) {
	query := req.URL.Query()
	if query.Get(constant.RequestParamPartial) != BlockRows {
		return 0, false
	}

	seq, err := strconv.ParseUint(query.Get(constant.RequestParamSeq), 10, 64)
	if err != nil {
		seq = 0
	}

	return seq, true
}

// Rows writes the rows fragment of a list page, echoing seq so the page can
// drop answers to superseded requests.
func (r *Renderer) Rows(w http.ResponseWriter, req *http.Request, status int, name string, seq uint64, data any) {
	w.Header().Set(constant.RequestHeaderViewSeq, strconv.FormatUint(seq, 10))

	r.Partial(w, req, status, name, BlockRows, data)
}
