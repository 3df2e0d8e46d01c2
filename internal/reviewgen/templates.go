// Package reviewgen holds the templating and weighting logic behind
// synthetic reviews: sentiment-bucketed template pools, the vocabulary the
// interpolation slots draw from, and the deterministic template-index hash
// used for on-demand backfill.
package reviewgen

import (
	"math/rand"
	"strings"
)

// Sentiment buckets a synthetic review's tone and rating range.
type Sentiment int

const (
	SentimentPositive Sentiment = iota
	SentimentNeutral
	SentimentNegative
)

func (s Sentiment) String() string {
	switch s {
	case SentimentPositive:
		return "positive"
	case SentimentNeutral:
		return "neutral"
	case SentimentNegative:
		return "negative"
	}
	return "unknown"
}

// Sentiment distribution for bulk seeding.
const (
	positiveWeight = 0.6
	neutralWeight  = 0.3
)

var positiveTemplates = []string{
	"Tempat yang luar biasa! Saya sangat menikmati {activity}. Pemandangannya sangat indah.",
	"Saya tidak menyangka {place} akan sebagus ini! {highlight} benar-benar menakjubkan.",
	"Sangat direkomendasikan! {activity} adalah pengalaman yang tak terlupakan.",
	"Kunjungan yang menyenangkan ke {place}. {highlight} adalah favorit saya.",
	"Tempat yang sempurna untuk {activity}. Akan kembali lagi suatu saat!",
	"Salah satu destinasi terbaik di {region}! {highlight} layak untuk dikunjungi.",
	"Pemandangannya spektakuler! Saya menghabiskan berjam-jam untuk {activity}.",
	"Pengalaman yang luar biasa di {place}. Semua orang harus mencoba {activity}.",
	"Saya sangat terkesan dengan {highlight}. Pelayanan juga sangat baik.",
	"Tempat yang menakjubkan dengan banyak aktivitas. {activity} adalah yang terbaik!",
}

var neutralTemplates = []string{
	"Kunjungan yang cukup menyenangkan ke {place}. {highlight} cukup bagus.",
	"Tempat yang oke untuk {activity}, tapi bisa lebih baik dengan beberapa perbaikan.",
	"{place} memiliki potensi, tapi {downside} perlu diperhatikan.",
	"Pengalaman yang biasa saja. {highlight} bagus, tapi {downside} kurang nyaman.",
	"Tidak buruk untuk {activity}, tapi mungkin tidak akan kembali dalam waktu dekat.",
	"Layak dikunjungi sekali, tapi ada destinasi lain di {region} yang lebih menarik.",
	"Tempatnya lumayan, {highlight} cukup bagus tapi {downside} agak mengecewakan.",
	"Menghabiskan waktu yang menyenangkan di {place}, meski tidak begitu spektakuler.",
	"Ada beberapa hal menarik seperti {highlight}, tapi secara keseluruhan biasa saja.",
	"Pengalaman yang oke, tapi harga tiket terlalu mahal untuk apa yang ditawarkan.",
}

var negativeTemplates = []string{
	"Kecewa dengan kunjungan ke {place}. {downside} benar-benar menganggu pengalaman.",
	"Tidak direkomendasikan. {downside} membuat pengalaman menjadi tidak menyenangkan.",
	"Menghabiskan waktu di {place} adalah keputusan yang salah. {downside} sangat buruk.",
	"Lebih baik kunjungi tempat lain di {region}. {downside} sangat mengganggu.",
	"Pengalaman yang mengecewakan. {activity} tidak seperti yang diharapkan.",
	"Tempat yang terlalu ramai dan tidak terawat. {downside} perlu diperbaiki segera.",
	"Tidak worth it sama sekali. {downside} membuat saya tidak ingin kembali.",
	"Pelayanan sangat buruk di {place}. {downside} benar-benar merusak kunjungan.",
	"Harga tiket terlalu mahal untuk apa yang ditawarkan. {downside} sangat mengganggu.",
	"Saya menyesal mengunjungi {place}. {activity} sama sekali tidak menyenangkan.",
}

// generalTemplates back the on-demand backfill path. They carry no
// interpolation slots: the selection hash, not the text, is what ties them
// to a destination.
var generalTemplates = []string{
	"Tempat wisata yang luar biasa! Pemandangan alam yang menakjubkan dan pelayanan yang ramah.",
	"Salah satu destinasi terbaik yang pernah saya kunjungi. Makanan lokalnya enak dan pemandangannya memukau.",
	"Sangat direkomendasikan untuk liburan keluarga. Banyak aktivitas yang bisa dilakukan dan tempatnya bersih.",
	"Pengalaman budaya yang autentik. Belajar banyak tentang sejarah dan tradisi lokal saat berkunjung.",
	"Tempatnya menarik tapi agak ramai saat akhir pekan. Sarankan untuk datang di hari kerja.",
	"Perjalanan yang sangat berkesan. Wajib dikunjungi bagi pecinta wisata alam Indonesia.",
	"Keindahan alamnya tidak perlu diragukan lagi. Namun fasilitas pendukung masih perlu ditingkatkan.",
	"Sungguh takjub dengan keindahan tempat ini. Akan kembali lagi suatu hari nanti.",
	"Petualangan yang menyenangkan. Cocok untuk pencinta alam dan fotografi.",
	"Akses ke lokasi agak sulit tapi sepadan dengan keindahannya.",
}

var highlights = []string{
	"Pemandangannya", "Arsitekturnya", "Suasananya", "Makanan lokalnya",
	"Atraksi utamanya", "Area pikniknya", "Jalur trekingnya", "Koleksi museumnya",
	"Fasilitas bermainnya", "Taman bunga", "Area fotonya", "Sunset viewnya",
	"Puncak bukit", "Air terjunnya", "Kebun binatangnya", "Pantainya",
	"Kawah gunungnya", "Perairan jernihnya", "Tempat peristirahatannya",
}

var activities = []string{
	"berjalan-jalan", "menikmati pemandangan", "mengambil foto", "mencoba kuliner lokal",
	"mendaki", "berenang", "menjelajahi area", "bersantai", "melihat sunset",
	"berperahu", "camping", "piknik keluarga", "mengikuti tur", "bermain di taman bermain",
	"mengamati satwa", "belajar sejarah lokal", "berbelanja oleh-oleh", "mencoba aktivitas outbound",
	"menyaksikan pertunjukan budaya", "mengunjungi monumen bersejarah",
}

var downsides = []string{
	"toilet yang kotor", "kurangnya tempat duduk", "harga tiket yang mahal", "antrian panjang",
	"parkir yang sempit", "kurangnya peneduh", "pemandu yang tidak ramah", "informasi yang kurang",
	"area yang terlalu ramai", "kurangnya tempat sampah", "jalan yang rusak", "akses yang sulit",
	"makanan yang mahal", "kurangnya transportasi umum", "pelayanan yang lambat", "penjual yang agresif",
	"pedagang yang mengganggu", "area yang tidak terawat", "kurangnya tanda petunjuk", "kurangnya area bermain anak",
}

// TemplateCount is the size of the on-demand template pool.
func TemplateCount() int {
	return len(generalTemplates)
}

// TemplateIndex is the deterministic template selector for on-demand
// backfill: a stable function of the author key, the destination key and the
// iteration index. Repeated calls with the same inputs always pick the same
// template.
func TemplateIndex(authorKey, destinationKey string, index int) int {
	return (len(authorKey) + len(destinationKey) + index) % len(generalTemplates)
}

// OnDemandText returns the backfill review text for the given author and
// destination at iteration index.
func OnDemandText(authorKey, destinationName string, index int) string {
	return generalTemplates[TemplateIndex(authorKey, destinationName, index)]
}

// OnDemandRating samples the backfill rating: an integer 4 or 5.
func OnDemandRating(rng *rand.Rand) float64 {
	return float64(4 + rng.Intn(2))
}

// RollSentiment draws a sentiment with the 60/30/10 seeding distribution.
func RollSentiment(rng *rand.Rand) Sentiment {
	roll := rng.Float64()
	switch {
	case roll < positiveWeight:
		return SentimentPositive
	case roll < positiveWeight+neutralWeight:
		return SentimentNeutral
	default:
		return SentimentNegative
	}
}

// RatingFor samples a rating in the sentiment's range, in tenths:
// positive [4.0,5.0], neutral [3.0,4.0], negative [1.0,3.0].
func RatingFor(s Sentiment, rng *rand.Rand) float64 {
	switch s {
	case SentimentPositive:
		return float64(40+rng.Intn(11)) / 10
	case SentimentNeutral:
		return float64(30+rng.Intn(11)) / 10
	default:
		return float64(10+rng.Intn(21)) / 10
	}
}

// Fill picks a template for the sentiment and resolves every interpolation
// slot: {place} and {region} from the destination, {activity}, {highlight}
// and {downside} from the vocabulary lists.
func Fill(s Sentiment, rng *rand.Rand, place, region string) string {
	var pool []string
	switch s {
	case SentimentPositive:
		pool = positiveTemplates
	case SentimentNeutral:
		pool = neutralTemplates
	default:
		pool = negativeTemplates
	}

	if region == "" {
		region = "Indonesia"
	}

	template := pool[rng.Intn(len(pool))]
	replacer := strings.NewReplacer(
		"{place}", place,
		"{region}", region,
		"{activity}", activities[rng.Intn(len(activities))],
		"{highlight}", highlights[rng.Intn(len(highlights))],
		"{downside}", downsides[rng.Intn(len(downsides))],
	)
	return replacer.Replace(template)
}
