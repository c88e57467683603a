package catalog

import "github.com/michy-dev/africa-trends-live/internal/domain"

// Hand-curated backup content substituted when a live source yields nothing.
// Chart tables are keyed by lowercase ISO code, never by display strings.

const defaultBackupCode = "ng"

var backupCharts = map[string][]domain.ChartTrack{
	"ng": {
		{Rank: 1, Title: "Jogodo", Artist: "Wizkid & Asake", Streams: "607K"},
		{Rank: 2, Title: "Turbulence", Artist: "Wizkid & Asake", Streams: "493K"},
		{Rank: 3, Title: "Alaye", Artist: "Wizkid & Asake", Streams: "369K"},
		{Rank: 4, Title: "MY HEALER", Artist: "Seyi Vibez & Omah Lay", Streams: "306K"},
		{Rank: 5, Title: "BODY", Artist: "CKay & Mavo", Streams: "210K"},
	},
	"za": {
		{Rank: 1, Title: "Mnike", Artist: "Tyler ICU", Streams: "285K"},
		{Rank: 2, Title: "Tshwala Bam", Artist: "TitoM & Yuppe", Streams: "264K"},
		{Rank: 3, Title: "Water", Artist: "Tyla", Streams: "228K"},
		{Rank: 4, Title: "CHANEL", Artist: "Tyla", Streams: "198K"},
		{Rank: 5, Title: "Asibe Happy", Artist: "Kabza De Small", Streams: "187K"},
	},
	"ke": {
		{Rank: 1, Title: "Anguka Nayo", Artist: "Medallion", Streams: "145K"},
		{Rank: 2, Title: "Christmas Love", Artist: "Bensoul", Streams: "98K"},
		{Rank: 3, Title: "Suzanna", Artist: "Sauti Sol", Streams: "87K"},
		{Rank: 4, Title: "Unavyonipenda", Artist: "Nviiri", Streams: "76K"},
		{Rank: 5, Title: "Kuna Kuna", Artist: "Vic West", Streams: "65K"},
	},
	"gh": {
		{Rank: 1, Title: "Kilos Milos", Artist: "Black Sherif", Streams: "156K"},
		{Rank: 2, Title: "Terminator", Artist: "Asake & Ayra Starr", Streams: "134K"},
		{Rank: 3, Title: "Jamz", Artist: "Sarkodie", Streams: "112K"},
		{Rank: 4, Title: "Soja", Artist: "Stonebwoy", Streams: "98K"},
		{Rank: 5, Title: "Party", Artist: "King Promise", Streams: "87K"},
	},
}

// BackupChart returns the static rows for a country code, falling back to
// the default country when the code is unrecognized. The result is a copy.
func BackupChart(code string) []domain.ChartTrack {
	rows, ok := backupCharts[code]
	if !ok {
		rows = backupCharts[defaultBackupCode]
	}
	out := make([]domain.ChartTrack, len(rows))
	copy(out, rows)
	return out
}

// FallbackRising returns the illustrative rising list shown when no region
// produced a positive interest change.
func FallbackRising() []domain.RisingArtist {
	return []domain.RisingArtist{
		{Name: "Mavo", Country: "🇳🇬", Change: "+890%", Reason: `"Tumo Weto" viral on TikTok`},
		{Name: "Shoday", Country: "🇳🇬", Change: "+720%", Reason: `"Paparazzi" collab with FOLA`},
		{Name: "Vyroota", Country: "🇺🇬", Change: "+650%", Reason: `"Kunsi" #1 in Uganda`},
		{Name: "Priesst", Country: "🇳🇬", Change: "+340%", Reason: `"Akonuche" remix with Victony`},
		{Name: "Boy Muller", Country: "🇳🇬", Change: "+280%", Reason: `"LAPOPIANO" crossover hit`},
	}
}
