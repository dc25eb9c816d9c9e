package view

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"pasaratsiri/internal/domain/entity"
	"pasaratsiri/internal/usecase"
	"pasaratsiri/pkg/utils"
)

// Cell kinds understood by the row templates.
const (
	CellText   = "text"
	CellAvatar = "avatar"
	CellImage  = "image"
	CellBadge  = "badge"
	CellMono   = "mono"
	CellLong   = "long"
)

// Action kinds understood by the row templates and app.js.
const (
	ActionDetail = "detail"
	ActionStatus = "status"
	ActionDelete = "delete"
	ActionEdit   = "edit"
)

type Cell struct {
	Kind    string
	Text    string
	Initial string
	Src     string
	Tone    string
}

type Action struct {
	Kind    string
	Label   string
	Status  string
	Tone    string
	Confirm string
	// Name and Price prefill the market price form for edit actions.
	Name  string
	Price float64
}

type Row struct {
	ID      string
	Cells   []Cell
	Actions []Action
}

type Field struct {
	Label string
	Value string
	Tone  string
	Badge bool
	Wide  bool
	Links []Link
}

type Link struct {
	Label string
	URL   string
}

type Item struct {
	Initial  string
	Title    string
	Subtitle string
	Body     string
	Rating   float64
}

type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Detail is the content of the detail modal.
type Detail struct {
	ParentID   string
	Title      string
	Subtitle   string
	Body       string
	Fields     []Field
	Table      *Table
	ItemsTitle string
	Items      []Item
	EmptyText  string
	Loading    bool
	Nested     bool
}

type Presenter struct {
	location *time.Location
	linker   usecase.DocumentLinker
}

func NewPresenter(location *time.Location, linker usecase.DocumentLinker) *Presenter {
	return &Presenter{
		location: location,
		linker:   linker,
	}
}

var columns = map[string][]string{
	usecase.ResourceUsers:          {"Nama", "Email", "Role", "Nomor Telepon"},
	usecase.ResourceProducts:       {"Gambar", "Nama Produk", "Kategori", "Harga"},
	usecase.ResourceOrders:         {"ID Pesanan", "Pengguna", "Tanggal", "Total Harga", "Status"},
	usecase.ResourceCertifications: {"Email Pemohon", "Tipe Sertifikasi", "Status"},
	usecase.ResourceSubsidies:      {"Nama Pemohon", "Tipe Subsidi", "Jumlah", "Status"},
	usecase.ResourceTrainings:      {"Judul Pelatihan", "Kategori", "Jadwal", "Peserta"},
	usecase.ResourcePosts:          {"Penulis", "Kategori", "Isi Konten", "Jml. Komentar"},
	usecase.ResourceMarketPrices:   {"Nama Komoditas", "Harga Saat Ini", "Harga Sebelumnya", "Update Terakhir", "Diupdate Oleh"},
}

// Columns lists the table headers of a resource, the action column included.
func (p *Presenter) Columns(r *usecase.Resource) []string {
	return append(append([]string{}, columns[r.Key]...), "Aksi")
}

func (p *Presenter) Rows(r *usecase.Resource, records []usecase.Record) []Row {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		row := Row{ID: usecase.RecordID(record)}
		row.Cells, row.Actions = p.row(record)
		if r.HasDetail {
			row.Actions = append([]Action{{Kind: ActionDetail, Label: detailLabel(r.Key), Tone: "primary"}}, row.Actions...)
		}
		row.Actions = append(row.Actions, Action{Kind: ActionDelete, Label: "Hapus", Tone: "error", Confirm: r.ConfirmDelete})
		rows = append(rows, row)
	}
	return rows
}

func detailLabel(key string) string {
	switch key {
	case usecase.ResourceProducts:
		return "Ulasan"
	case usecase.ResourcePosts:
		return "Komentar"
	}
	return "Detail"
}

func (p *Presenter) row(record usecase.Record) ([]Cell, []Action) {
	switch rec := record.(type) {
	case *entity.User:
		return []Cell{
			{Kind: CellAvatar, Text: utils.OrDash(rec.Name), Initial: utils.Initial(rec.Name, "U"), Src: rec.PhotoURL},
			text(rec.Email),
			text(rec.Role),
			text(rec.PhoneNumber),
		}, nil

	case *entity.Product:
		return []Cell{
			{Kind: CellImage, Text: rec.Name, Src: rec.ImageURL},
			text(rec.Name),
			text(rec.Category),
			text(utils.Rupiah(rec.Price)),
		}, nil

	case *entity.Order:
		return []Cell{
			{Kind: CellMono, Text: rec.ID},
			text(orNA(rec.UserName)),
			text(utils.DateTime(rec.CreatedAt, p.location)),
			text(utils.Rupiah(rec.TotalPrice)),
			{Kind: CellBadge, Text: utils.OrDash(rec.Status), Tone: "primary"},
		}, nil

	case *entity.Certification:
		return []Cell{
			text(rec.Email),
			text(rec.CertificationType),
			statusBadge(rec.Status),
		}, statusActions(rec.Status)

	case *entity.Subsidy:
		return []Cell{
			text(rec.UserName),
			text(rec.SubsidyType),
			text(utils.Rupiah(rec.SubsidyAmount)),
			statusBadge(rec.Status),
		}, statusActions(rec.Status)

	case *entity.Training:
		return []Cell{
			text(rec.Description),
			text(rec.Category),
			text(utils.LongDateTime(rec.Date, p.location)),
			text(fmt.Sprintf("%d / %d", rec.CurrentParticipants, rec.MaxParticipants)),
		}, nil

	case *entity.Post:
		return []Cell{
			text(rec.AuthorName),
			text(rec.Category),
			{Kind: CellLong, Text: utils.OrDash(rec.Content)},
			text(fmt.Sprintf("%d", rec.CommentCount)),
		}, nil

	case *entity.MarketPrice:
		cells := []Cell{
			text(rec.CommodityName),
			text(utils.Rupiah(rec.CurrentPrice)),
			text(utils.Rupiah(rec.PreviousPrice)),
			text(utils.DateTime(rec.LastUpdate, p.location)),
			text(rec.UpdatedBy),
		}
		edit := Action{
			Kind: ActionEdit, Label: "Edit", Tone: "primary",
			Name: rec.CommodityName, Price: rec.CurrentPrice,
		}
		return cells, []Action{edit}
	}
	return nil, nil
}

func text(s string) Cell {
	return Cell{Kind: CellText, Text: utils.OrDash(s)}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func statusBadge(status string) Cell {
	return Cell{Kind: CellBadge, Text: utils.OrDash(status), Tone: entity.StatusTone(status)}
}

func statusActions(status string) []Action {
	offered := entity.StatusActions(status)
	actions := make([]Action, 0, len(offered))
	for _, a := range offered {
		tone := "success"
		if a.Status == entity.StatusRejected {
			tone = "error"
		}
		actions = append(actions, Action{Kind: ActionStatus, Label: a.Label, Status: a.Status, Tone: tone})
	}
	return actions
}

// Detail builds the modal for parent. items is nil while the nested
// collection is still loading.
func (p *Presenter) Detail(ctx context.Context, r *usecase.Resource, parent usecase.Record, items []usecase.Record, loading bool) Detail {
	d := Detail{
		ParentID: usecase.RecordID(parent),
		Loading:  loading,
		Nested:   r.Nested != "",
	}

	switch rec := parent.(type) {
	case *entity.Product:
		d.Title = "Ulasan untuk: " + utils.OrDash(rec.Name)
		d.EmptyText = "Belum ada ulasan untuk produk ini."
		for _, record := range items {
			review, ok := record.(*entity.Review)
			if !ok {
				continue
			}
			name := review.UserName
			if strings.TrimSpace(name) == "" {
				name = "Anonim"
			}
			d.Items = append(d.Items, Item{
				Initial: utils.Initial(name, "A"),
				Title:   name,
				Body:    review.Comment,
				Rating:  review.Rating,
			})
		}

	case *entity.Order:
		d.Title = "Detail Pesanan: " + rec.ID
		d.Fields = []Field{
			{Label: "Nama Pemesan", Value: utils.OrDash(rec.UserName)},
			{Label: "Tanggal Pesanan", Value: utils.DateTime(rec.CreatedAt, p.location)},
			{Label: "Alamat Pengiriman", Value: utils.OrDash(rec.ShippingAddress), Wide: true},
			{Label: "Metode Pembayaran", Value: utils.OrDash(rec.PaymentMethod)},
			{Label: "Status", Value: utils.OrDash(rec.Status), Tone: "primary", Badge: true},
		}
		table := &Table{Title: "Item Pesanan", Headers: []string{"Nama Produk", "Jumlah", "Harga"}}
		for _, item := range rec.Items {
			table.Rows = append(table.Rows, []string{
				utils.OrDash(item.ProductName),
				utils.Number(item.Quantity),
				"Rp " + utils.Number(item.Price),
			})
		}
		d.Table = table

	case *entity.Certification:
		d.Title = "Detail Pengajuan Sertifikasi"
		d.Fields = []Field{
			{Label: "Tipe Sertifikasi", Value: utils.OrDash(rec.CertificationType)},
			{Label: "Tipe Pemohon", Value: utils.OrDash(rec.ApplicantType)},
			{Label: "Email Pemohon", Value: utils.OrDash(rec.Email)},
			{Label: "Lokasi", Value: utils.OrDash(rec.Location)},
			{Label: "Tanggal Pengajuan", Value: utils.DateTime(rec.SubmittedDate, p.location)},
			{Label: "Status", Value: utils.OrDash(rec.Status), Tone: entity.StatusTone(rec.Status), Badge: true},
			{Label: "Deskripsi", Value: utils.OrDash(rec.Description), Wide: true},
			p.documents(ctx, rec.Documents),
		}

	case *entity.Subsidy:
		d.Title = "Detail Pengajuan Subsidi"
		d.Fields = []Field{
			{Label: "Nama Pemohon", Value: utils.OrDash(rec.UserName)},
			{Label: "Tipe Pemohon", Value: utils.OrDash(rec.ApplicantType)},
			{Label: "Tipe Subsidi", Value: utils.OrDash(rec.SubsidyType)},
			{Label: "Jumlah Subsidi", Value: utils.Rupiah(rec.SubsidyAmount)},
			{Label: "Tanggal Pengajuan", Value: utils.DateTime(rec.SubmittedDate, p.location)},
			{Label: "Status", Value: utils.OrDash(rec.Status), Tone: entity.StatusTone(rec.Status), Badge: true},
			{Label: "Luas Lahan", Value: farmArea(rec.FarmArea)},
			{Label: "No. Telepon", Value: utils.OrDash(rec.PhoneNumber)},
			{Label: "Deskripsi", Value: utils.OrDash(rec.Description), Wide: true},
		}

	case *entity.Training:
		d.Title = "Detail Pelatihan"
		d.Subtitle = utils.OrDash(rec.Description)
		d.Fields = []Field{
			{Label: "Penyelenggara", Value: utils.OrDash(rec.Organizer)},
			{Label: "Lokasi", Value: utils.OrDash(rec.Location)},
		}
		d.ItemsTitle = fmt.Sprintf("Daftar Peserta (%d)", len(items))
		d.EmptyText = "Belum ada peserta yang mendaftar."
		for _, record := range items {
			registrant, ok := record.(*entity.Registrant)
			if !ok {
				continue
			}
			d.Items = append(d.Items, Item{
				Initial:  utils.Initial(registrant.UserName, "U"),
				Title:    utils.OrDash(registrant.UserName),
				Subtitle: "Mendaftar pada: " + utils.DateTime(registrant.CreatedAt, p.location),
			})
		}

	case *entity.Post:
		d.Title = utils.OrDash(rec.Category)
		d.Subtitle = "Ditulis oleh: " + utils.OrDash(rec.AuthorName)
		d.Body = rec.Content
		d.ItemsTitle = "Komentar"
		d.EmptyText = "Belum ada komentar."
		for _, record := range items {
			comment, ok := record.(*entity.Comment)
			if !ok {
				continue
			}
			d.Items = append(d.Items, Item{
				Initial: utils.Initial(comment.AuthorName, "U"),
				Title:   utils.OrDash(comment.AuthorName),
				Body:    comment.Content,
			})
		}
	}
	return d
}

func (p *Presenter) documents(ctx context.Context, docs map[string]string) Field {
	field := Field{Label: "Dokumen Pendukung", Wide: true}

	names := make([]string, 0, len(docs))
	for name, ref := range docs {
		if strings.TrimSpace(ref) != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		label := "Lihat Dokumen"
		if len(names) > 1 {
			label += " " + name
		}
		field.Links = append(field.Links, Link{Label: label, URL: p.linker.Link(ctx, docs[name])})
	}
	if len(field.Links) == 0 {
		field.Value = utils.Dash
	}
	return field
}

func farmArea(v interface{}) string {
	switch area := v.(type) {
	case nil:
		return utils.Dash
	case string:
		return utils.OrDash(area)
	case float64:
		if area == 0 {
			return utils.Dash
		}
		return utils.Number(area)
	case int:
		if area == 0 {
			return utils.Dash
		}
		return utils.Number(float64(area))
	case int64:
		if area == 0 {
			return utils.Dash
		}
		return utils.Number(float64(area))
	}
	return fmt.Sprint(v)
}
