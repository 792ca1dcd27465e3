package models

// OfferIDSet — множество артикулов, известных маркетплейсу, с сохранением
// порядка вставки. Порядок важен: непотреблённые артикулы обнуляются именно
// в том порядке, в котором их вернул каталог.
type OfferIDSet struct {
	order  []string
	member map[string]struct{}
}

func NewOfferIDSet(ids []string) *OfferIDSet {
	s := &OfferIDSet{member: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add добавляет артикул; повторы игнорируются (первое вхождение выигрывает).
func (s *OfferIDSet) Add(id string) {
	if _, ok := s.member[id]; ok {
		return
	}
	s.member[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *OfferIDSet) Contains(id string) bool {
	_, ok := s.member[id]
	return ok
}

// Remove потребляет артикул. Удалённый артикул больше не участвует
// ни в Contains, ни в Remaining.
func (s *OfferIDSet) Remove(id string) {
	delete(s.member, id)
}

// Remaining возвращает непотреблённые артикулы в порядке вставки.
func (s *OfferIDSet) Remaining() []string {
	remaining := make([]string, 0, len(s.member))
	for _, id := range s.order {
		if _, ok := s.member[id]; ok {
			remaining = append(remaining, id)
		}
	}
	return remaining
}

func (s *OfferIDSet) Len() int {
	return len(s.member)
}

// Clone возвращает независимую копию множества. Каждый проход сверки
// получает свою копию, чтобы потребление артикулов не протекало между ними.
func (s *OfferIDSet) Clone() *OfferIDSet {
	clone := &OfferIDSet{
		order:  make([]string, len(s.order)),
		member: make(map[string]struct{}, len(s.member)),
	}
	copy(clone.order, s.order)
	for id := range s.member {
		clone.member[id] = struct{}{}
	}
	return clone
}
