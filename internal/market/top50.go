package market

// The tracked top-50 universe: 25 KRX listings and 25 US listings.
var top50 = []Stock{
	{Market: "kr", Ticker: "005930", Exchange: "KRX", NameKo: "삼성전자", NameEn: "Samsung Electronics"},
	{Market: "kr", Ticker: "000660", Exchange: "KRX", NameKo: "SK하이닉스", NameEn: "SK Hynix"},
	{Market: "kr", Ticker: "373220", Exchange: "KRX", NameKo: "LG에너지솔루션", NameEn: "LG Energy Solution"},
	{Market: "kr", Ticker: "207940", Exchange: "KRX", NameKo: "삼성바이오로직스", NameEn: "Samsung Biologics", Aliases: []string{"삼성바이오"}},
	{Market: "kr", Ticker: "005380", Exchange: "KRX", NameKo: "현대차", NameEn: "Hyundai Motor", Aliases: []string{"현대자동차"}},
	{Market: "kr", Ticker: "068270", Exchange: "KRX", NameKo: "셀트리온", NameEn: "Celltrion"},
	{Market: "kr", Ticker: "000270", Exchange: "KRX", NameKo: "기아", NameEn: "Kia"},
	{Market: "kr", Ticker: "035420", Exchange: "KRX", NameKo: "NAVER", NameEn: "NAVER", Aliases: []string{"네이버"}},
	{Market: "kr", Ticker: "051910", Exchange: "KRX", NameKo: "LG화학", NameEn: "LG Chem"},
	{Market: "kr", Ticker: "006400", Exchange: "KRX", NameKo: "삼성SDI", NameEn: "Samsung SDI"},
	{Market: "kr", Ticker: "035720", Exchange: "KRX", NameKo: "카카오", NameEn: "Kakao"},
	{Market: "kr", Ticker: "028260", Exchange: "KRX", NameKo: "삼성물산", NameEn: "Samsung C&T"},
	{Market: "kr", Ticker: "105560", Exchange: "KRX", NameKo: "KB금융", NameEn: "KB Financial"},
	{Market: "kr", Ticker: "055550", Exchange: "KRX", NameKo: "신한지주", NameEn: "Shinhan Financial"},
	{Market: "kr", Ticker: "012330", Exchange: "KRX", NameKo: "현대모비스", NameEn: "Hyundai Mobis"},
	{Market: "kr", Ticker: "066570", Exchange: "KRX", NameKo: "LG전자", NameEn: "LG Electronics"},
	{Market: "kr", Ticker: "003670", Exchange: "KRX", NameKo: "포스코홀딩스", NameEn: "POSCO Holdings", Aliases: []string{"포스코"}},
	{Market: "kr", Ticker: "086790", Exchange: "KRX", NameKo: "하나금융지주", NameEn: "Hana Financial"},
	{Market: "kr", Ticker: "034730", Exchange: "KRX", NameKo: "SK", NameEn: "SK Inc"},
	{Market: "kr", Ticker: "096770", Exchange: "KRX", NameKo: "SK이노베이션", NameEn: "SK Innovation"},
	{Market: "kr", Ticker: "032830", Exchange: "KRX", NameKo: "삼성생명", NameEn: "Samsung Life"},
	{Market: "kr", Ticker: "003550", Exchange: "KRX", NameKo: "LG", NameEn: "LG Corp"},
	{Market: "kr", Ticker: "017670", Exchange: "KRX", NameKo: "SK텔레콤", NameEn: "SK Telecom"},
	{Market: "kr", Ticker: "030200", Exchange: "KRX", NameKo: "KT", NameEn: "KT Corp"},
	{Market: "kr", Ticker: "036570", Exchange: "KRX", NameKo: "엔씨소프트", NameEn: "NCSOFT"},

	{Market: "us", Ticker: "AAPL", Exchange: "NASDAQ", NameKo: "애플", NameEn: "Apple"},
	{Market: "us", Ticker: "MSFT", Exchange: "NASDAQ", NameKo: "마이크로소프트", NameEn: "Microsoft"},
	{Market: "us", Ticker: "NVDA", Exchange: "NASDAQ", NameKo: "엔비디아", NameEn: "NVIDIA"},
	{Market: "us", Ticker: "GOOGL", Exchange: "NASDAQ", NameKo: "알파벳", NameEn: "Alphabet", Aliases: []string{"구글", "Google"}},
	{Market: "us", Ticker: "AMZN", Exchange: "NASDAQ", NameKo: "아마존", NameEn: "Amazon"},
	{Market: "us", Ticker: "META", Exchange: "NASDAQ", NameKo: "메타", NameEn: "Meta Platforms"},
	{Market: "us", Ticker: "TSLA", Exchange: "NASDAQ", NameKo: "테슬라", NameEn: "Tesla"},
	{Market: "us", Ticker: "BRK.B", Exchange: "NYSE", NameKo: "버크셔해서웨이", NameEn: "Berkshire Hathaway"},
	{Market: "us", Ticker: "AVGO", Exchange: "NASDAQ", NameKo: "브로드컴", NameEn: "Broadcom"},
	{Market: "us", Ticker: "JPM", Exchange: "NYSE", NameKo: "JP모건", NameEn: "JPMorgan Chase", Aliases: []string{"JPMorgan"}},
	{Market: "us", Ticker: "LLY", Exchange: "NYSE", NameKo: "일라이릴리", NameEn: "Eli Lilly"},
	{Market: "us", Ticker: "V", Exchange: "NYSE", NameKo: "비자", NameEn: "Visa"},
	{Market: "us", Ticker: "UNH", Exchange: "NYSE", NameKo: "유나이티드헬스", NameEn: "UnitedHealth"},
	{Market: "us", Ticker: "XOM", Exchange: "NYSE", NameKo: "엑슨모빌", NameEn: "Exxon Mobil"},
	{Market: "us", Ticker: "MA", Exchange: "NYSE", NameKo: "마스터카드", NameEn: "Mastercard"},
	{Market: "us", Ticker: "COST", Exchange: "NASDAQ", NameKo: "코스트코", NameEn: "Costco"},
	{Market: "us", Ticker: "JNJ", Exchange: "NYSE", NameKo: "존슨앤존슨", NameEn: "Johnson & Johnson"},
	{Market: "us", Ticker: "HD", Exchange: "NYSE", NameKo: "홈디포", NameEn: "Home Depot"},
	{Market: "us", Ticker: "PG", Exchange: "NYSE", NameKo: "P&G", NameEn: "Procter & Gamble"},
	{Market: "us", Ticker: "ABBV", Exchange: "NYSE", NameKo: "애브비", NameEn: "AbbVie"},
	{Market: "us", Ticker: "WMT", Exchange: "NYSE", NameKo: "월마트", NameEn: "Walmart"},
	{Market: "us", Ticker: "NFLX", Exchange: "NASDAQ", NameKo: "넷플릭스", NameEn: "Netflix"},
	{Market: "us", Ticker: "CRM", Exchange: "NYSE", NameKo: "세일즈포스", NameEn: "Salesforce"},
	{Market: "us", Ticker: "AMD", Exchange: "NASDAQ", NameKo: "AMD", NameEn: "AMD"},
	{Market: "us", Ticker: "ORCL", Exchange: "NYSE", NameKo: "오라클", NameEn: "Oracle"},
}
