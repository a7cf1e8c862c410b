// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/ava-labs/whitelist-dapp/utils/logging"
	"github.com/ava-labs/whitelist-dapp/whitelist"
)

const (
	connectEndpoint = "/connect"
	joinEndpoint    = "/join"
)

var (
	//go:embed templates/page.html
	templates embed.FS

	pageTemplate = template.Must(template.ParseFS(templates, "templates/page.html"))
)

// Page renders the whitelist page and handles its two buttons. Button presses
// redirect back to the page, so a reload never repeats them.
type Page struct {
	log        logging.Logger
	controller *whitelist.Controller
}

func NewPage(log logging.Logger, controller *whitelist.Controller) *Page {
	return &Page{
		log:        log,
		controller: controller,
	}
}

type pageData struct {
	Count           uint64
	View            whitelist.View
	Alert           string
	ConnectEndpoint string
	JoinEndpoint    string
}

// Render shows the page. While the wallet isn't connected, every render
// attempts to connect it first.
func (p *Page) Render(w http.ResponseWriter, r *http.Request) {
	p.controller.Activate(r.Context())

	snapshot := p.controller.Snapshot()
	data := pageData{
		Count:           snapshot.Count,
		View:            whitelist.Select(snapshot),
		Alert:           p.controller.TakeAlert(),
		ConnectEndpoint: connectEndpoint,
		JoinEndpoint:    joinEndpoint,
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		p.log.Error("failed to render page",
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Connect handles the connect button. It is only shown while disconnected.
func (p *Page) Connect(w http.ResponseWriter, r *http.Request) {
	if p.controller.View() == whitelist.ViewConnect {
		_ = p.controller.ConnectWallet(r.Context())
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Join handles the join button. The join runs in the background so the page
// shows it as loading. It is only shown while connected and not yet joined.
// The join is marked loading once it has a signer, so the page shown after the
// redirect may still offer the button.
func (p *Page) Join(w http.ResponseWriter, r *http.Request) {
	if p.controller.View() == whitelist.ViewJoin {
		p.controller.StartJoin()
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
