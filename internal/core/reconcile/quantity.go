package reconcile

import (
	"fmt"
	"strconv"
	"strings"
)

// QuantityError сигнализирует, что дескриптор количества не удалось
// привести к остатку.
type QuantityError struct {
	Descriptor string
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("cannot convert quantity descriptor %q to stock", e.Descriptor)
}

// BucketQuantity переводит дескриптор количества поставщика в остаток:
// ">10" означает "много" и превращается в 100, "1" — витринный экземпляр,
// который не продаём, поэтому 0. Остальное обязано быть целым числом.
func BucketQuantity(descriptor string) (int, error) {
	switch descriptor {
	case ">10":
		return 100, nil
	case "1":
		return 0, nil
	}
	count, err := strconv.Atoi(strings.TrimSpace(descriptor))
	if err != nil || count < 0 {
		return 0, &QuantityError{Descriptor: descriptor}
	}
	return count, nil
}
