package codec

// WriteSeq writes a length prefix for n elements and then calls elem once
// per element, in order.
func WriteSeq(w Writer, n int, elem func(i int) error) error {
	if err := w.WriteSeqLen(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := elem(i); err != nil {
			return err
		}
	}
	return nil
}

// ReadSeq reads a sequence length prefix and calls elem once per element.
// It returns the number of elements read.
func ReadSeq(r Reader, elem func(i int) error) (int, error) {
	n, err := r.ReadSeqLen()
	if err != nil {
		return 0, err
	}
	return n, readElems(r, n, elem)
}

// WriteMap writes a length prefix for n entries and then calls pair once per
// entry. pair must write the key followed by the value.
func WriteMap(w Writer, n int, pair func(i int) error) error {
	if err := w.WriteMapLen(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := pair(i); err != nil {
			return err
		}
	}
	return nil
}

func ReadMap(r Reader, pair func(i int) error) (int, error) {
	n, err := r.ReadMapLen()
	if err != nil {
		return 0, err
	}
	return n, readElems(r, n, pair)
}

func readElems(r Reader, n int, elem func(i int) error) error {
	if err := r.Enter(); err != nil {
		return err
	}
	defer r.Leave()
	for i := 0; i < n; i++ {
		if err := elem(i); err != nil {
			return err
		}
	}
	return nil
}

// WriteOption writes the option discriminant and, when present, the payload.
func WriteOption(w Writer, present bool, payload func() error) error {
	if err := w.WriteOptionTag(present); err != nil {
		return err
	}
	if !present {
		return nil
	}
	return payload()
}

// ReadOption reads the option discriminant and calls payload only when a
// value is present.
func ReadOption(r Reader, payload func() error) (bool, error) {
	present, err := r.ReadOptionTag()
	if err != nil || !present {
		return false, err
	}
	if err := r.Enter(); err != nil {
		return false, err
	}
	defer r.Leave()
	if err := payload(); err != nil {
		return false, err
	}
	return true, nil
}

// WriteUnion writes a variant index followed by its payload. payload may be
// nil for variants that carry no data.
func WriteUnion(w Writer, index uint32, payload func() error) error {
	if err := w.WriteVariant(index); err != nil {
		return err
	}
	if payload == nil {
		return nil
	}
	return payload()
}

// ReadUnion reads a variant index below count and dispatches to payload
// with that index.
func ReadUnion(r Reader, count uint32, payload func(index uint32) error) (uint32, error) {
	idx, err := r.ReadVariant(count)
	if err != nil {
		return 0, err
	}
	if payload == nil {
		return idx, nil
	}
	if err := r.Enter(); err != nil {
		return 0, err
	}
	defer r.Leave()
	if err := payload(idx); err != nil {
		return 0, err
	}
	return idx, nil
}
