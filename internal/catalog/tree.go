// Package catalog derives filtered and faceted views over the in-memory
// product list. Every function here is pure: the same list and filter state
// always produce the same result, and filters subtract from the input order
// without ever reordering it.
package catalog

// CategoryNode is one top-level category with its allowed sub-categories.
type CategoryNode struct {
	L1  string   `json:"l1"`
	L2s []string `json:"l2s"`
}

// categoryTree is the fixed LNB taxonomy: L1 label to the ordered list of
// allowed L2 labels. It drives menus and validates category assignment; it
// is not persisted per-product beyond the chosen pair.
var categoryTree = []CategoryNode{
	{"청소/욕실", []string{"청소용품(세제/브러쉬)", "세탁용품(세탁망/건조대)", "욕실용품(발매트/수건)", "휴지통/분리수거"}},
	{"수납/정리", []string{"수납박스/바구니", "리빙박스/정리함", "틈새수납", "옷걸이/선반", "주방수납", "냉장고 정리"}},
	{"주방용품", []string{"식기(접시/그릇)", "컵/물병/텀블러", "밀폐용기", "조리도구(칼/가위)", "주방잡화(행주/수세미)"}},
	{"문구/팬시", []string{"필기구/노트", "사무용품(파일/서류)", "포장용품", "디자인 문구", "전자기기 액세서리"}},
	{"뷰티/위생", []string{"스킨/바디케어", "마스크팩", "화장소품(브러쉬)", "메이크업", "위생용품(마스크/밴드)"}},
	{"패션/잡화", []string{"의류/언더웨어", "가방/파우치", "양말/스타킹", "패션소품(액세서리)", "슈즈용품"}},
	{"인테리어/원예", []string{"홈데코(쿠션/커튼)", "액자/시계", "원예용품(화분/씨앗)", "조명", "시즌 데코"}},
	{"공구/디지털", []string{"공구/안전용품", "차량/자전거 용품", "디지털 액세서리(케이블/충전기)", "전지/건전지"}},
	{"스포츠/레저/취미", []string{"캠핑/여행용품", "스포츠/헬스용품", "DIY/취미용품", "뜨개/공예", "반려동물용품"}},
	{"식품", []string{"과자/초콜릿", "음료/주스", "라면/즉석식품", "건강식품", "견과류"}},
	{"유아/완구", []string{"아동/유아용품", "완구/장난감", "교육/학습용품"}},
	{"시즌/시리즈", []string{"봄/여름 기획", "전통 시리즈", "캐릭터 컬래버"}},
	{"베스트/신상품", []string{"인기 순위 상품", "신상품"}},
}

// Tree returns the full category taxonomy in menu order.
func Tree() []CategoryNode {
	return categoryTree
}

// L2s returns the allowed sub-categories under an L1 label, nil when the L1
// is not part of the tree.
func L2s(l1 string) []string {
	for _, n := range categoryTree {
		if n.L1 == l1 {
			return n.L2s
		}
	}
	return nil
}

// ValidPair reports whether the L2 label belongs to the L1's allowed subset.
func ValidPair(l1, l2 string) bool {
	for _, s := range L2s(l1) {
		if s == l2 {
			return true
		}
	}
	return false
}
