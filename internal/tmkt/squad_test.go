package tmkt

import (
	"strings"
	"testing"
)

func squadHTML(players [][2]string, badges []string) string {
	var b strings.Builder
	b.WriteString(`<html><body><table class="items"><tbody>`)
	for i, p := range players {
		b.WriteString(`<tr>`)
		if i < len(badges) {
			b.WriteString(`<td class="zentriert"><div class="rn_nummer">` + badges[i] + `</div></td>`)
		}
		b.WriteString(`<td class="posrela"><table class="inline-table"><tr><td class="hauptlink"> ` + p[0] + ` </td></tr><tr><td>` + p[1] + `</td></tr></table></td>`)
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table></body></html>`)
	return b.String()
}

func TestExtractSquad_ForwardOrderPairing(t *testing.T) {
	html := squadHTML([][2]string{
		{"Alisson", "Goalkeeper"},
		{"Virgil van Dijk", "Centre-Back"},
		{"Mohamed Salah", "Right Winger"},
	}, []string{"1", "4", "11"})

	squad, err := ExtractSquad(html)
	if err != nil {
		t.Fatalf("ExtractSquad error: %v", err)
	}
	if len(squad) != 3 {
		t.Fatalf("expected 3 players, got %d", len(squad))
	}
	// the i-th row top-to-bottom must get the i-th badge top-to-bottom
	want := []PlayerRecord{
		{"Alisson", "Goalkeeper", "1"},
		{"Virgil van Dijk", "Centre-Back", "4"},
		{"Mohamed Salah", "Right Winger", "11"},
	}
	for i, w := range want {
		if squad[i] != w {
			t.Errorf("player %d = %+v, want %+v", i, squad[i], w)
		}
	}
}

func TestExtractSquad_DashMeansNoNumber(t *testing.T) {
	html := squadHTML([][2]string{{"Youth Prospect", "Centre-Forward"}}, []string{"-"})
	squad, err := ExtractSquad(html)
	if err != nil {
		t.Fatalf("ExtractSquad error: %v", err)
	}
	if squad[0].ShirtNo != "" {
		t.Errorf("ShirtNo = %q, want empty for unassigned number", squad[0].ShirtNo)
	}
}

func TestExtractSquad_BadgeCountMismatch(t *testing.T) {
	html := squadHTML([][2]string{
		{"One", "Goalkeeper"},
		{"Two", "Centre-Back"},
	}, []string{"1"})
	if _, err := ExtractSquad(html); err == nil {
		t.Fatal("expected error on row/badge count mismatch")
	}
}

func TestExtractSquad_NoTable(t *testing.T) {
	if _, err := ExtractSquad(`<html><body><p>maintenance</p></body></html>`); err == nil {
		t.Fatal("expected error when squad table is missing")
	}
}
