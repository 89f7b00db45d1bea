package weather

// donPerTroyOunce converts a troy-ounce quote into the Korean retail weight
// unit (1돈 = 3.75g, 1 troy oz = 31.1035g).
const donPerTroyOunce = 3.75 / 31.1035

// assetOrder fixes the serving order of the dashboard.
var assetOrder = []string{
	"usdkrw", "jpykrw", "cnykrw", "eurkrw",
	"kospi", "kosdaq", "nasdaq", "sp500", "dowjones",
	"gold", "silver", "gasoline", "diesel", "kbrealestate",
	"bitcoin", "ethereum", "feargreed",
	"bokrate", "bonds", "bonds2y", "krbond3y", "krbond10y", "yieldspread",
	"cpi", "ppi", "ccsi",
}

// IDs returns all configured asset IDs in serving order.
func IDs() []string {
	ids := make([]string, len(assetOrder))
	copy(ids, assetOrder)
	return ids
}

// Lookup returns the configuration for an asset ID.
func Lookup(id string) (*Config, bool) {
	cfg, ok := registry[id]
	return cfg, ok
}

func messages(sunny, cloudy, rainy, thunder string) map[Status]string {
	return map[Status]string{
		StatusSunny:   sunny,
		StatusCloudy:  cloudy,
		StatusRainy:   rainy,
		StatusThunder: thunder,
	}
}

// scaleJPY quotes the yen per 100 JPY. Stored rates may arrive per 1 JPY
// (roughly 9-10원) or already scaled; anything under 100 is treated as a
// per-unit rate.
func scaleJPY(price, _ float64) float64 {
	if price < 100 {
		return price * 100
	}
	return price
}

func metalToWonPerDon(price, fx float64) float64 {
	return price * donPerTroyOunce * fx
}

var registry = map[string]*Config{
	"usdkrw": {
		Name:               "미국 달러",
		Category:           CategoryCurrency,
		Classify:           classifyPriceBand(1350, 1400),
		FormatPrice:        fmtWon(0),
		FormatChangePoints: fmtWonDelta(2),
		Messages: messages(
			"해외직구 타이밍! 달러가 저렴해요.",
			"환율이 잠잠해요. 큰 변화가 없네요.",
			"지금 여행가면 손해예요! 환전은 미루세요.",
			"환율이 요동치고 있어요! 조심하세요.",
		),
		Advice:   "환율이 높을 땐 수출 기업 주식이 좋을 수 있어요! 반대로 환율이 낮을 땐 해외여행이나 직구가 유리해요.",
		Source:   "exchangerate-api",
		Basis:    "전일 대비",
		Fallback: Fallback{Base: 1380, Volatility: 50},
	},
	"jpykrw": {
		Name:               "일본 엔 (100엔)",
		Category:           CategoryCurrency,
		Classify:           classifyPriceBand(880, 970),
		UnitAdjust:         scaleJPY,
		FormatPrice:        fmtWon(2),
		FormatChangePoints: fmtWonDelta(2),
		Messages: messages(
			"엔화가 싸졌어요! 일본 여행 적기예요.",
			"엔화가 큰 움직임 없이 흘러가요.",
			"엔화가 비싸요. 일본 여행은 아까워요.",
			"엔화가 요동치고 있어요! 환전 타이밍 주의!",
		),
		Advice:   "엔저일 때 일본 여행이나 엔화 예금을 고려해볼 만해요. 다만 환율 바닥을 맞추려는 욕심은 금물이에요.",
		Source:   "exchangerate-api",
		Basis:    "전일 대비",
		Fallback: Fallback{Base: 920, Volatility: 20},
	},
	"cnykrw": {
		Name:               "중국 위안",
		Category:           CategoryCurrency,
		Classify:           classifyPriceBand(185, 200),
		FormatPrice:        fmtWon(2),
		FormatChangePoints: fmtWonDelta(2),
		Messages: messages(
			"위안화가 저렴해요. 중국 직구 타이밍!",
			"위안화가 조용해요. 큰 변화가 없네요.",
			"위안화가 비싸졌어요.",
			"위안화가 크게 흔들리고 있어요!",
		),
		Advice:   "위안화 환율은 한국 수출 경기와도 연결돼요. 중국 관련 투자 전에 환율 흐름을 확인하세요.",
		Source:   "exchangerate-api",
		Basis:    "전일 대비",
		Fallback: Fallback{Base: 192, Volatility: 5},
	},
	"eurkrw": {
		Name:               "유로",
		Category:           CategoryCurrency,
		Classify:           classifyPriceBand(1450, 1550),
		FormatPrice:        fmtWon(0),
		FormatChangePoints: fmtWonDelta(2),
		Messages: messages(
			"유로가 저렴해요! 유럽 여행 준비해볼까요?",
			"유로가 잠잠해요. 큰 변화가 없네요.",
			"유로가 비싸요. 유럽 여행은 부담스러워요.",
			"유로가 요동치고 있어요!",
		),
		Advice:   "유로는 달러 다음으로 많이 쓰이는 통화예요. 유럽 여행 계획이 있다면 분할 환전이 안전해요.",
		Source:   "exchangerate-api",
		Basis:    "전일 대비",
		Fallback: Fallback{Base: 1500, Volatility: 40},
	},
	"kospi": {
		Name:               "코스피",
		Category:           CategoryIndex,
		Classify:           classifyIndex,
		FormatPrice:        fmtPoints,
		FormatChangePoints: fmtPointsDelta,
		Messages: messages(
			"시장이 뜨거워요! 빨간불이 켜졌어요.",
			"시장이 조용하네요. 관망하는 분위기예요.",
			"시장이 차갑게 식었어요. 바겐세일 중일지도?",
			"시장이 요동치고 있어요! 롤러코스터 주의보!",
		),
		Advice:   "주식 시장이 하락할 때는 좋은 기업을 싸게 살 기회일 수 있어요. 하지만 무리한 투자는 금물!",
		Source:   "Yahoo Finance (^KS11)",
		Basis:    "전일 종가 대비",
		Fallback: Fallback{Base: 2500, Volatility: 100},
	},
	"kosdaq": {
		Name:               "코스닥",
		Category:           CategoryIndex,
		Classify:           classifyIndex,
		FormatPrice:        fmtPoints,
		FormatChangePoints: fmtPointsDelta,
		Messages: messages(
			"코스닥이 달리고 있어요!",
			"코스닥이 조용하네요.",
			"코스닥이 쉬어가는 중이에요.",
			"코스닥이 크게 출렁이고 있어요!",
		),
		Advice:   "코스닥은 코스피보다 변동성이 커요. 성장주 투자는 장기 관점으로 접근하는 게 좋아요.",
		Source:   "Yahoo Finance (^KQ11)",
		Basis:    "전일 종가 대비",
		Fallback: Fallback{Base: 700, Volatility: 30},
	},
	"nasdaq": {
		Name:               "나스닥",
		Category:           CategoryIndex,
		Classify:           classifyIndex,
		FormatPrice:        fmtPoints,
		FormatChangePoints: fmtPointsDelta,
		Messages: messages(
			"나스닥이 뜨거워요! 기술주의 날이에요.",
			"나스닥이 숨 고르기 중이에요.",
			"나스닥이 차갑게 식었어요.",
			"나스닥이 요동치고 있어요! 안전벨트 매세요!",
		),
		Advice:   "미국 기술주는 환율 영향도 같이 받아요. 달러가 쌀 때 분할 매수하면 환차익도 노릴 수 있어요.",
		Source:   "Yahoo Finance (^IXIC)",
		Basis:    "전일 종가 대비",
		Fallback: Fallback{Base: 19000, Volatility: 500},
	},
	"sp500": {
		Name:               "S&P 500",
		Category:           CategoryIndex,
		Classify:           classifyIndex,
		FormatPrice:        fmtPoints,
		FormatChangePoints: fmtPointsDelta,
		Messages: messages(
			"미국 시장에 햇살이 가득해요!",
			"미국 시장이 잠잠해요.",
			"미국 시장이 주춤하고 있어요.",
			"미국 시장이 크게 흔들리고 있어요!",
		),
		Advice:   "S&P 500은 미국 경제 전체를 보는 창이에요. 장기 적립식 투자에 가장 많이 쓰이는 지수예요.",
		Source:   "Yahoo Finance (^GSPC)",
		Basis:    "전일 종가 대비",
		Fallback: Fallback{Base: 6000, Volatility: 150},
	},
	"dowjones": {
		Name:               "다우존스",
		Category:           CategoryIndex,
		Classify:           classifyIndex,
		FormatPrice:        fmtPoints,
		FormatChangePoints: fmtPointsDelta,
		Messages: messages(
			"다우가 힘차게 오르고 있어요!",
			"다우가 조용한 하루를 보내고 있어요.",
			"다우가 무겁게 가라앉았어요.",
			"다우가 크게 출렁이고 있어요!",
		),
		Advice:   "다우존스는 미국 대형 우량주 30개로 구성돼요. 배당주 중심의 안정적인 지수예요.",
		Source:   "Yahoo Finance (^DJI)",
		Basis:    "전일 종가 대비",
		Fallback: Fallback{Base: 44000, Volatility: 800},
	},
	"gold": {
		Name:               "금",
		Category:           CategoryCommodity,
		Classify:           classifyCommodity,
		UnitAdjust:         metalToWonPerDon,
		FormatPrice:        fmtPerDon,
		FormatChangePoints: fmtPerDonDelta,
		BuySpread:          1.03,
		SellSpread:         0.97,
		Messages: messages(
			"불안할 땐 역시 금이죠! 방어력이 올라갔어요.",
			"금값이 안정적이에요. 조용한 하루네요.",
			"세상이 평화로운가 봐요. 금 인기가 식었어요.",
			"금값이 크게 움직이고 있어요!",
		),
		Advice:   "금은 경제가 불안할 때 가치가 오르는 안전자산이에요. 포트폴리오의 10~15%를 금으로 가져가면 안정적이에요.",
		Source:   "Yahoo Finance (GC=F)",
		Basis:    "전일 종가 대비 · 1돈(3.75g) 환산",
		Fallback: Fallback{Base: 2650, Volatility: 80},
	},
	"silver": {
		Name:               "은",
		Category:           CategoryCommodity,
		Classify:           classifyCommodity,
		UnitAdjust:         metalToWonPerDon,
		FormatPrice:        fmtPerDon,
		FormatChangePoints: fmtPerDonDelta,
		BuySpread:          1.05,
		SellSpread:         0.95,
		Messages: messages(
			"은값이 반짝반짝 빛나고 있어요!",
			"은값이 무난하게 흘러가요.",
			"은값이 주춤하고 있어요.",
			"은값이 크게 움직이고 있어요!",
		),
		Advice:   "은은 금보다 변동성이 크지만 산업 수요도 있는 금속이에요. 소액으로 분산 투자하기 좋아요.",
		Source:   "Yahoo Finance (SI=F)",
		Basis:    "전일 종가 대비 · 1돈(3.75g) 환산",
		Fallback: Fallback{Base: 31, Volatility: 2},
	},
	"gasoline": {
		Name:               "휘발유",
		Category:           CategoryCommodity,
		Classify:           classifyFuelBand(1600, 1750),
		FormatPrice:        fmtWon(0),
		FormatChangePoints: fmtWonDelta(0),
		Messages: messages(
			"기름값이 착해졌어요! 드라이브 가기 좋은 날.",
			"기름값이 평소 수준이에요.",
			"기름값이 비싸요. 대중교통이 효자예요.",
			"기름값이 급등락 중이에요!",
		),
		Advice:   "주유소별 가격 차이가 꽤 커요. 가격 비교 앱으로 싼 주유소를 찾으면 연간 수십만 원을 아낄 수 있어요.",
		Source:   "오피넷 전국 평균",
		Basis:    "전일 대비",
		Fallback: Fallback{Base: 1680, Volatility: 30},
	},
	"diesel": {
		Name:               "경유",
		Category:           CategoryCommodity,
		Classify:           classifyFuelBand(1450, 1600),
		FormatPrice:        fmtWon(0),
		FormatChangePoints: fmtWonDelta(0),
		Messages: messages(
			"경유값이 내려갔어요! 화물차 기사님들 웃는 날.",
			"경유값이 평소 수준이에요.",
			"경유값이 비싸요.",
			"경유값이 급등락 중이에요!",
		),
		Advice:   "경유는 국제 정세에 민감하게 반응해요. 유류세 정책 변화도 체감 가격에 큰 영향을 줘요.",
		Source:   "오피넷 전국 평균",
		Basis:    "전일 대비",
		Fallback: Fallback{Base: 1580, Volatility: 30},
	},
	"kbrealestate": {
		Name:               "아파트 (강남 기준)",
		Category:           CategoryCommodity,
		Classify:           classifyRealEstate,
		FormatPrice:        fmtEok,
		FormatChangePoints: fmtManwonDelta,
		Messages: messages(
			"집값이 꿈틀거리고 있어요.",
			"집값이 잠잠해요. 관망세가 이어져요.",
			"집값이 숨을 고르고 있어요.",
			"집값이 크게 움직이고 있어요!",
		),
		Advice:   "부동산은 금리와 반대로 움직이는 경향이 있어요. 금리 사이클을 함께 보면 흐름이 읽혀요.",
		Source:   "부동산원 매매가격지수",
		Basis:    "전월 대비 · 25억 환산",
		Fallback: Fallback{Base: 24.9, Volatility: 0.5},
	},
	"bitcoin": {
		Name:               "비트코인",
		Category:           CategoryCrypto,
		Classify:           classifyCrypto,
		FormatPrice:        fmtKRWSymbol,
		FormatChangePoints: fmtKRWSymbolDelta,
		Messages: messages(
			"코인이 달리고 있어요!",
			"코인이 조용하네요. 폭풍 전 고요일지도?",
			"코인이 쉬어가는 중이에요. 잠시 숨 고르기?",
			"롤러코스터 출발합니다! 꽉 잡으세요!",
		),
		Advice:   "비트코인은 변동성이 매우 커요. 잃어도 괜찮은 금액만 투자하고, 장기 관점으로 바라보세요.",
		Source:   "CoinGecko",
		Basis:    "24시간 대비",
		Fallback: Fallback{Base: 135000000, Volatility: 7000000},
	},
	"ethereum": {
		Name:               "이더리움",
		Category:           CategoryCrypto,
		Classify:           classifyCrypto,
		FormatPrice:        fmtKRWSymbol,
		FormatChangePoints: fmtKRWSymbolDelta,
		Messages: messages(
			"이더리움이 힘차게 오르고 있어요!",
			"이더리움이 조용하네요.",
			"이더리움이 쉬어가는 중이에요.",
			"이더리움이 크게 출렁이고 있어요!",
		),
		Advice:   "이더리움은 비트코인과 다르게 플랫폼 성격이 강해요. 생태계 뉴스가 가격에 큰 영향을 줘요.",
		Source:   "CoinGecko",
		Basis:    "24시간 대비",
		Fallback: Fallback{Base: 4800000, Volatility: 300000},
	},
	"feargreed": {
		Name:               "공포탐욕지수",
		Category:           CategoryCrypto,
		Classify:           classifyFearGreed,
		FormatPrice:        fmtSentiment,
		FormatChangePoints: fmtSentimentDelta,
		AbsoluteChange:     true,
		Messages: messages(
			"시장에 욕심이 번지고 있어요.",
			"시장 심리가 중립이에요.",
			"시장이 공포에 떨고 있어요. 기회일지도?",
			"탐욕이 극에 달했어요! 과열 주의보!",
		),
		Advice:   "남들이 공포에 떨 때가 기회라는 말이 있어요. 다만 지수는 참고만 하고, 판단은 본인 기준으로!",
		Source:   "alternative.me",
		Basis:    "전일 대비",
		Fallback: Fallback{Base: 50, Volatility: 15},
	},
	"bokrate": {
		Name:               "한국 기준금리",
		Category:           CategoryBonds,
		Classify:           classifyRate,
		FormatPrice:        fmtPercent,
		FormatChangePoints: fmtPercentPointsDelta,
		AbsoluteChange:     true,
		Messages: messages(
			"은행 이자가 쏠쏠해요. 적금 들기 좋은 날!",
			"기준금리가 그대로예요.",
			"금리가 많이 내려갔어요.",
			"금리가 급변하고 있어요!",
		),
		Advice:   "기준금리는 모든 금리의 기준점이에요. 인상기엔 예적금, 인하기엔 대출 갈아타기를 챙겨보세요.",
		Source:   "한국은행 ECOS",
		Basis:    "직전 결정 대비",
		Fallback: Fallback{Base: 3.0, Volatility: 0.25},
	},
	"bonds": {
		Name:               "미국 10년물 국채",
		Category:           CategoryBonds,
		Classify:           classifyRate,
		FormatPrice:        fmtPercent,
		FormatChangePoints: fmtPercentPointsDelta,
		AbsoluteChange:     true,
		Messages: messages(
			"은행 이자가 쏠쏠해요. 적금 들기 좋은 날!",
			"금리가 내려갔어요. 대출받긴 좋겠네요.",
			"금리가 많이 내려갔어요.",
			"금리가 급변하고 있어요!",
		),
		Advice:   "금리가 높을 때는 예금과 적금이 유리해요. 금리가 낮을 때는 대출 받기 좋은 시기예요.",
		Source:   "Yahoo Finance (^TNX)",
		Basis:    "전일 대비 (%p)",
		Fallback: Fallback{Base: 4.2, Volatility: 0.3},
	},
	"bonds2y": {
		Name:               "미국 2년물 국채",
		Category:           CategoryBonds,
		Classify:           classifyRate,
		FormatPrice:        fmtPercent,
		FormatChangePoints: fmtPercentPointsDelta,
		AbsoluteChange:     true,
		Messages: messages(
			"단기 금리가 올라가고 있어요.",
			"단기 금리가 잠잠해요.",
			"단기 금리가 내려갔어요.",
			"단기 금리가 급변하고 있어요!",
		),
		Advice:   "2년물 금리는 연준의 정책 방향을 가장 빠르게 반영해요. 10년물과의 차이도 함께 보세요.",
		Source:   "Yahoo Finance (^IRX)",
		Basis:    "전일 대비 (%p)",
		Fallback: Fallback{Base: 4.3, Volatility: 0.3},
	},
	"krbond3y": {
		Name:               "한국 3년물 국채",
		Category:           CategoryBonds,
		Classify:           classifyRate,
		FormatPrice:        fmtPercent,
		FormatChangePoints: fmtPercentPointsDelta,
		AbsoluteChange:     true,
		Messages: messages(
			"국채 금리가 올라가고 있어요.",
			"국채 금리가 잠잠해요.",
			"국채 금리가 내려갔어요.",
			"국채 금리가 급변하고 있어요!",
		),
		Advice:   "3년물 국채 금리는 한국 시중금리의 바로미터예요. 대출 금리 방향을 미리 보여줘요.",
		Source:   "한국은행 ECOS",
		Basis:    "전일 대비 (%p)",
		Fallback: Fallback{Base: 2.85, Volatility: 0.15},
	},
	"krbond10y": {
		Name:               "한국 10년물 국채",
		Category:           CategoryBonds,
		Classify:           classifyRate,
		FormatPrice:        fmtPercent,
		FormatChangePoints: fmtPercentPointsDelta,
		AbsoluteChange:     true,
		Messages: messages(
			"장기 금리가 올라가고 있어요.",
			"장기 금리가 잠잠해요.",
			"장기 금리가 내려갔어요.",
			"장기 금리가 급변하고 있어요!",
		),
		Advice:   "10년물 금리는 장기 경기 전망을 반영해요. 채권 투자 타이밍을 잡을 때 참고하세요.",
		Source:   "한국은행 ECOS",
		Basis:    "전일 대비 (%p)",
		Fallback: Fallback{Base: 2.95, Volatility: 0.15},
	},
	"yieldspread": {
		Name:               "장단기 금리차 (미국)",
		Category:           CategoryBonds,
		Classify:           classifyYieldSpread,
		FormatPrice:        fmtPercent,
		FormatChangePoints: fmtPercentPointsDelta,
		AbsoluteChange:     true,
		Messages: messages(
			"금리차가 벌어지고 있어요. 경기 전망이 밝아요.",
			"금리차가 큰 변화 없이 유지되고 있어요.",
			"금리차가 바짝 좁혀졌어요. 경기 둔화 신호일까요?",
			"장단기 금리가 역전됐어요! 침체 경고등!",
		),
		Advice:   "10년물에서 2년물을 뺀 값이에요. 역전(마이너스)은 역사적으로 경기 침체에 앞서 나타났어요.",
		Source:   "Yahoo Finance (^TNX − ^IRX)",
		Basis:    "전일 대비 (%p)",
		Fallback: Fallback{Base: 0.3, Volatility: 0.1},
	},
	"cpi": {
		Name:               "소비자물가지수",
		Category:           CategoryBonds,
		Classify:           classifyInflation,
		FormatPrice:        fmtIndexLevel,
		FormatChangePoints: fmtIndexLevelDelta,
		Messages: messages(
			"물가가 안정되고 있어요!",
			"물가가 완만하게 움직이고 있어요.",
			"장바구니가 무거워요. 물가가 뛰고 있어요.",
			"물가가 급등하고 있어요!",
		),
		Advice:   "물가가 오르면 현금 가치는 떨어져요. 인플레이션 시기엔 실물 자산 비중을 점검해보세요.",
		Source:   "한국은행 ECOS",
		Basis:    "전월 대비 (%)",
		Fallback: Fallback{Base: 103.5, Volatility: 0.5},
	},
	"ppi": {
		Name:               "생산자물가지수",
		Category:           CategoryBonds,
		Classify:           classifyInflation,
		FormatPrice:        fmtIndexLevel,
		FormatChangePoints: fmtIndexLevelDelta,
		Messages: messages(
			"생산자 물가가 안정세예요!",
			"생산자 물가가 완만해요.",
			"생산자 물가가 오르고 있어요. 소비자가격도 곧?",
			"생산자 물가가 급등하고 있어요!",
		),
		Advice:   "생산자물가는 소비자물가의 선행지표예요. 몇 달 뒤 장바구니 물가를 미리 보여줘요.",
		Source:   "한국은행 ECOS",
		Basis:    "전월 대비 (%)",
		Fallback: Fallback{Base: 115.2, Volatility: 0.5},
	},
	"ccsi": {
		Name:               "소비자심리지수",
		Category:           CategoryBonds,
		Classify:           classifyConsumerSentiment,
		FormatPrice:        fmtIndexLevel,
		FormatChangePoints: fmtIndexLevelDelta,
		AbsoluteChange:     true,
		Messages: messages(
			"소비 심리에 볕이 들었어요!",
			"소비 심리가 보통 수준이에요.",
			"지갑이 꽁꽁 닫혔어요. 소비 심리가 차가워요.",
			"소비 심리가 과열됐어요!",
		),
		Advice:   "100보다 높으면 낙관, 낮으면 비관이에요. 내수 관련 투자의 온도계로 쓸 수 있어요.",
		Source:   "한국은행 ECOS",
		Basis:    "전월 대비",
		Fallback: Fallback{Base: 98.5, Volatility: 3},
	},
}
