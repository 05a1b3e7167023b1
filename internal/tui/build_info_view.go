// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-client/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("App") + appName + "\n")
	b.WriteString(labelStyle.Render("Version") + info.BuildVersion() + "\n")
	b.WriteString(labelStyle.Render("Date") + info.BuildDate() + "\n")
	b.WriteString(labelStyle.Render("Commit") + info.BuildCommit())

	return renderPage("ABOUT", b.String(), "esc back")
}
