package spot

import "time"

// LandmarkID is the designated long-visit landmark used by the
// recommendation rules.
const LandmarkID = "miyajima"

// DefaultCenter is the map focus when no explicit point is available.
var DefaultCenter = struct{ Lat, Lng float64 }{34.3955, 132.4547}

func hoursFor(open, close string, days ...int) []OpeningHours {
	hs := make([]OpeningHours, 0, len(days))
	for _, d := range days {
		hs = append(hs, OpeningHours{Day: d, Open: open, Close: close})
	}
	return hs
}

func allWeek(open, close string) []OpeningHours {
	return hoursFor(open, close, 0, 1, 2, 3, 4, 5, 6)
}

// Seed returns the built-in Hiroshima catalog. Creation timestamps are
// offsets from now so the default newest ordering stays meaningful.
func Seed(now time.Time) []*Spot {
	seed := []*Spot{
		{
			ID: "dome", Name: "広島平和記念資料館", Lat: 34.39176, Lng: 132.45208,
			Kind: KindIndoor, Category: CategoryMuseum, CreatedAt: now.Add(-5 * time.Hour),
			OpeningHours: append(hoursFor("08:30", "18:00", 1, 2, 3, 4, 5), hoursFor("08:30", "19:00", 6, 0)...),
		},
		{
			ID: "castle", Name: "広島城", Lat: 34.401, Lng: 132.459,
			Kind: KindOutdoor, Category: CategoryHistory, CreatedAt: now.Add(-48 * time.Hour),
			OpeningHours: allWeek("09:00", "17:00"),
		},
		{
			ID: LandmarkID, Name: "宮島 厳島神社", Lat: 34.2967, Lng: 132.3199,
			Kind: KindOutdoor, Category: CategoryShrine, CreatedAt: now.Add(-20 * time.Minute),
			OpeningHours: allWeek("06:30", "18:00"),
		},
		{
			ID: "gallery", Name: "近代美術館", Lat: 34.3903, Lng: 132.4725,
			Kind: KindIndoor, Category: CategoryMuseum, CreatedAt: now.Add(-10 * time.Minute),
			OpeningHours: hoursFor("10:00", "17:00", 2, 3, 4, 5, 6, 0),
			ClosedDays:   []int{1},
		},
		{
			ID: "okonomiyaki1", Name: "お好み焼き 鶴橋", Lat: 34.39453, Lng: 132.45132,
			Kind: KindIndoor, Category: CategoryFood, CreatedAt: now.Add(-3 * time.Hour),
			OpeningHours: append(hoursFor("11:00", "21:00", 1, 2, 3, 4, 0), hoursFor("11:00", "22:00", 5, 6)...),
		},
		{
			ID: "park1", Name: "広島中央公園", Lat: 34.38913, Lng: 132.45894,
			Kind: KindOutdoor, Category: CategoryNature, CreatedAt: now.Add(-2 * time.Hour),
			OpeningHours: allWeek("05:00", "21:00"),
		},
		{
			ID: "shopping1", Name: "アリスガーデン", Lat: 34.39805, Lng: 132.47392,
			Kind: KindIndoor, Category: CategoryShopping, CreatedAt: now.Add(-1 * time.Hour),
			OpeningHours: allWeek("10:00", "21:00"),
		},
		{
			ID: "ramen1", Name: "らーめん 味噌八", Lat: 34.40531, Lng: 132.46892,
			Kind: KindIndoor, Category: CategoryFood, CreatedAt: now.Add(-45 * time.Minute),
			OpeningHours: append(append(hoursFor("11:00", "23:00", 1, 2, 3, 4), hoursFor("11:00", "23:30", 5, 6)...), hoursFor("11:00", "22:00", 0)...),
		},
		{
			ID: "cafe1", Name: "カフェ アロマ", Lat: 34.38645, Lng: 132.46234,
			Kind: KindIndoor, Category: CategoryFood, CreatedAt: now.Add(-60 * time.Minute),
			OpeningHours: append(hoursFor("08:00", "19:00", 0, 1, 2, 3, 4), hoursFor("08:00", "20:00", 5, 6)...),
		},
		{
			ID: "arcade1", Name: "本通り商店街", Lat: 34.39234, Lng: 132.46123,
			Kind: KindOutdoor, Category: CategoryShopping, CreatedAt: now.Add(-90 * time.Minute),
			OpeningHours: append(hoursFor("09:00", "20:00", 0, 1, 2, 3, 4), hoursFor("09:00", "21:00", 5, 6)...),
		},
		{
			ID: "river1", Name: "太田川河川敷", Lat: 34.40012, Lng: 132.44523,
			Kind: KindOutdoor, Category: CategoryNature, CreatedAt: now.Add(-120 * time.Minute),
			OpeningHours: allWeek("06:00", "22:00"),
		},
		{
			ID: "shrine1", Name: "住吉神社", Lat: 34.37834, Lng: 132.46723,
			Kind: KindOutdoor, Category: CategoryShrine, CreatedAt: now.Add(-150 * time.Minute),
			OpeningHours: allWeek("06:00", "18:00"),
		},
		{
			ID: "food1", Name: "お好み焼き ひろしま", Lat: 34.39678, Lng: 132.4524,
			Kind: KindIndoor, Category: CategoryFood, CreatedAt: now.Add(-180 * time.Minute),
			OpeningHours: append(hoursFor("11:00", "21:00", 1, 2, 3, 4, 0), hoursFor("11:00", "22:00", 5, 6)...),
		},
		{
			ID: "clothing1", Name: "ファッションモール広島", Lat: 34.40234, Lng: 132.4592,
			Kind: KindIndoor, Category: CategoryShopping, CreatedAt: now.Add(-200 * time.Minute),
			OpeningHours: allWeek("10:00", "21:00"),
		},
		{
			ID: "museum1", Name: "広島県立美術館", Lat: 34.39456, Lng: 132.46789,
			Kind: KindIndoor, Category: CategoryMuseum, CreatedAt: now.Add(-240 * time.Minute),
			OpeningHours: append(hoursFor("09:00", "17:00", 2, 3, 4, 5), hoursFor("09:00", "19:00", 6, 0)...),
			ClosedDays:   []int{1},
		},
		{
			ID: "okonomiyaki2", Name: "お好み焼き 八", Lat: 34.38923, Lng: 132.45612,
			Kind: KindIndoor, Category: CategoryFood, CreatedAt: now.Add(-4 * time.Hour),
			OpeningHours: append(hoursFor("11:30", "21:30", 1, 2, 3, 4, 0), hoursFor("11:30", "22:30", 5, 6)...),
		},
		{
			ID: "park2", Name: "比治山公園", Lat: 34.38123, Lng: 132.43892,
			Kind: KindOutdoor, Category: CategoryNature, CreatedAt: now.Add(-6 * time.Hour),
			OpeningHours: allWeek("06:00", "20:00"),
		},
		{
			ID: "fish1", Name: "くぐ松", Lat: 34.39845, Lng: 132.45934,
			Kind: KindIndoor, Category: CategoryFood, CreatedAt: now.Add(-7 * time.Hour),
			OpeningHours: append(hoursFor("11:00", "22:00", 1, 2, 3, 4, 0), hoursFor("11:00", "23:00", 5, 6)...),
		},
		{
			ID: "museum2", Name: "ヒロシマ原爆戦災資料館", Lat: 34.39234, Lng: 132.45623,
			Kind: KindIndoor, Category: CategoryMuseum, CreatedAt: now.Add(-8 * time.Hour),
			OpeningHours: append(hoursFor("09:00", "17:00", 1, 2, 3, 4), hoursFor("09:00", "18:00", 5, 6, 0)...),
		},
		{
			ID: "bookstore1", Name: "広島BOOKセンター", Lat: 34.39512, Lng: 132.46451,
			Kind: KindIndoor, Category: CategoryShopping, CreatedAt: now.Add(-9 * time.Hour),
			OpeningHours: append(hoursFor("10:00", "20:00", 0, 1, 2, 3, 4), hoursFor("10:00", "21:00", 5, 6)...),
		},
		{
			ID: "garden1", Name: "縮景園", Lat: 34.40123, Lng: 132.45212,
			Kind: KindOutdoor, Category: CategoryNature, CreatedAt: now.Add(-10 * time.Hour),
			OpeningHours: allWeek("09:00", "17:00"),
		},
		{
			ID: "tower1", Name: "ひろしまオリヅルタワー", Lat: 34.39512, Lng: 132.45289,
			Kind: KindIndoor, Category: CategoryHistory, CreatedAt: now.Add(-12 * time.Hour),
			OpeningHours: append(hoursFor("08:00", "19:00", 0, 1, 2, 3, 4), hoursFor("08:00", "20:00", 5, 6)...),
		},
		{
			ID: "mitaki", Name: "三瀧寺", Lat: 34.37612, Lng: 132.43892,
			Kind: KindOutdoor, Category: CategoryShrine, CreatedAt: now.Add(-14 * time.Hour),
			OpeningHours: allWeek("09:00", "16:00"),
		},
		{
			ID: "yakiniku1", Name: "焼肉 和牛樓", Lat: 34.40156, Lng: 132.46234,
			Kind: KindIndoor, Category: CategoryFood, CreatedAt: now.Add(-16 * time.Hour),
			OpeningHours: append(hoursFor("17:00", "23:00", 1, 2, 3, 4, 0), hoursFor("17:00", "23:30", 5, 6)...),
		},
		{
			ID: "flower1", Name: "広島フラワーフェスティバル", Lat: 34.39645, Lng: 132.4534,
			Kind: KindOutdoor, Category: CategoryNature, CreatedAt: now.Add(-18 * time.Hour),
			OpeningHours: allWeek("10:00", "18:00"),
		},
		{
			ID: "sushi1", Name: "すし 清", Lat: 34.39456, Lng: 132.45945,
			Kind: KindIndoor, Category: CategoryFood, CreatedAt: now.Add(-20 * time.Hour),
			OpeningHours: append(hoursFor("11:30", "22:00", 1, 2, 3, 4, 0), hoursFor("11:30", "23:00", 5, 6)...),
		},
		{
			ID: "boutique1", Name: "アナーキーグラッド", Lat: 34.39678, Lng: 132.46534,
			Kind: KindIndoor, Category: CategoryShopping, CreatedAt: now.Add(-22 * time.Hour),
			OpeningHours: append(hoursFor("11:00", "20:00", 0, 1, 2, 3, 4), hoursFor("11:00", "21:00", 5, 6)...),
		},
	}
	for _, s := range seed {
		ensureDefaults(s)
	}
	return seed
}

// ensureDefaults makes the social containers total so absent and empty
// mean the same thing.
func ensureDefaults(s *Spot) {
	if s.Photos == nil {
		s.Photos = []string{}
	}
	if s.Comments == nil {
		s.Comments = []Comment{}
	}
	if s.Ratings == nil {
		s.Ratings = []Rating{}
	}
	if s.Favorites == nil {
		s.Favorites = []string{}
	}
	if s.Visited == nil {
		s.Visited = []string{}
	}
	for i := range s.Comments {
		if s.Comments[i].Likes == nil {
			s.Comments[i].Likes = []string{}
		}
		if s.Comments[i].Replies == nil {
			s.Comments[i].Replies = []Reply{}
		}
	}
}
