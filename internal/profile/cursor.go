package profile

// Cursor2D is the 2D cursor profile variant: session id, 2D position, 2D
// velocity, and scalar motion acceleration.
//
// set argument order: x y Vx Vy m
type Cursor2D struct {
	sessionID          uint32
	Position           [2]float32
	Velocity           [2]float32
	MotionAcceleration float32
}

func (c *Cursor2D) SessionID() uint32 { return c.sessionID }
func (c *Cursor2D) Kind() Kind        { return KindCursor2D }

func (c *Cursor2D) Apply(args []float32) error {
	if len(args) != 5 {
		return &ErrArgCount{Kind: KindCursor2D, Expected: 5, Got: len(args)}
	}
	c.Position = [2]float32{args[0], args[1]}
	c.Velocity = [2]float32{args[2], args[3]}
	c.MotionAcceleration = args[4]
	return nil
}

func (c *Cursor2D) SetArgs() []float32 {
	return []float32{c.Position[0], c.Position[1], c.Velocity[0], c.Velocity[1], c.MotionAcceleration}
}

// Cursor25D is the 2.5D cursor profile variant.
//
// set argument order: x y z Vx Vy Vz m
type Cursor25D struct {
	sessionID          uint32
	Position           [3]float32
	Velocity           [3]float32
	MotionAcceleration float32
}

func (c *Cursor25D) SessionID() uint32 { return c.sessionID }
func (c *Cursor25D) Kind() Kind        { return KindCursor25D }

func (c *Cursor25D) Apply(args []float32) error {
	if len(args) != 7 {
		return &ErrArgCount{Kind: KindCursor25D, Expected: 7, Got: len(args)}
	}
	c.Position = [3]float32{args[0], args[1], args[2]}
	c.Velocity = [3]float32{args[3], args[4], args[5]}
	c.MotionAcceleration = args[6]
	return nil
}

func (c *Cursor25D) SetArgs() []float32 {
	return []float32{
		c.Position[0], c.Position[1], c.Position[2],
		c.Velocity[0], c.Velocity[1], c.Velocity[2],
		c.MotionAcceleration,
	}
}

// Cursor3D is the 3D cursor profile variant. Its wire shape is identical to
// Cursor25D (no angle attribute for cursors at any dimensionality); it is
// kept as a distinct type because it is a distinct address/Kind.
//
// set argument order: x y z Vx Vy Vz m
type Cursor3D struct {
	sessionID          uint32
	Position           [3]float32
	Velocity           [3]float32
	MotionAcceleration float32
}

func (c *Cursor3D) SessionID() uint32 { return c.sessionID }
func (c *Cursor3D) Kind() Kind        { return KindCursor3D }

func (c *Cursor3D) Apply(args []float32) error {
	if len(args) != 7 {
		return &ErrArgCount{Kind: KindCursor3D, Expected: 7, Got: len(args)}
	}
	c.Position = [3]float32{args[0], args[1], args[2]}
	c.Velocity = [3]float32{args[3], args[4], args[5]}
	c.MotionAcceleration = args[6]
	return nil
}

func (c *Cursor3D) SetArgs() []float32 {
	return []float32{
		c.Position[0], c.Position[1], c.Position[2],
		c.Velocity[0], c.Velocity[1], c.Velocity[2],
		c.MotionAcceleration,
	}
}
