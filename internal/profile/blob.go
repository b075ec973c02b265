package profile

// Blob2D is the 2D blob profile variant.
//
// set argument order: x y a w h f Vx Vy Va m r
type Blob2D struct {
	sessionID            uint32
	Position             [2]float32
	Angle                float32
	Dimension            [2]float32
	Area                 float32
	Velocity             [2]float32
	VelocityRotation     float32
	MotionAcceleration   float32
	RotationAcceleration float32
}

func (b *Blob2D) SessionID() uint32 { return b.sessionID }
func (b *Blob2D) Kind() Kind        { return KindBlob2D }

func (b *Blob2D) Apply(args []float32) error {
	if len(args) != 11 {
		return &ErrArgCount{Kind: KindBlob2D, Expected: 11, Got: len(args)}
	}
	b.Position = [2]float32{args[0], args[1]}
	b.Angle = args[2]
	b.Dimension = [2]float32{args[3], args[4]}
	b.Area = args[5]
	b.Velocity = [2]float32{args[6], args[7]}
	b.VelocityRotation = args[8]
	b.MotionAcceleration = args[9]
	b.RotationAcceleration = args[10]
	return nil
}

func (b *Blob2D) SetArgs() []float32 {
	return []float32{
		b.Position[0], b.Position[1], b.Angle,
		b.Dimension[0], b.Dimension[1], b.Area,
		b.Velocity[0], b.Velocity[1], b.VelocityRotation,
		b.MotionAcceleration, b.RotationAcceleration,
	}
}

// Blob25D is the 2.5D blob profile variant.
//
// set argument order: x y z a w h f Vx Vy Vz Va m r
type Blob25D struct {
	sessionID            uint32
	Position             [3]float32
	Angle                float32
	Dimension            [2]float32
	Area                 float32
	Velocity             [3]float32
	VelocityRotation     float32
	MotionAcceleration   float32
	RotationAcceleration float32
}

func (b *Blob25D) SessionID() uint32 { return b.sessionID }
func (b *Blob25D) Kind() Kind        { return KindBlob25D }

func (b *Blob25D) Apply(args []float32) error {
	if len(args) != 13 {
		return &ErrArgCount{Kind: KindBlob25D, Expected: 13, Got: len(args)}
	}
	b.Position = [3]float32{args[0], args[1], args[2]}
	b.Angle = args[3]
	b.Dimension = [2]float32{args[4], args[5]}
	b.Area = args[6]
	b.Velocity = [3]float32{args[7], args[8], args[9]}
	b.VelocityRotation = args[10]
	b.MotionAcceleration = args[11]
	b.RotationAcceleration = args[12]
	return nil
}

func (b *Blob25D) SetArgs() []float32 {
	return []float32{
		b.Position[0], b.Position[1], b.Position[2], b.Angle,
		b.Dimension[0], b.Dimension[1], b.Area,
		b.Velocity[0], b.Velocity[1], b.Velocity[2], b.VelocityRotation,
		b.MotionAcceleration, b.RotationAcceleration,
	}
}

// Blob3D is the 3D blob profile variant, with a volume attribute in place
// of 2D/2.5D's area, and 3-vector angle/velocity_rotation.
//
// set argument order: x y z a b c w h d v Vx Vy Vz Va Vb Vc m r
type Blob3D struct {
	sessionID            uint32
	Position             [3]float32
	Angle                [3]float32
	Dimension            [3]float32
	Volume               float32
	Velocity             [3]float32
	VelocityRotation     [3]float32
	MotionAcceleration   float32
	RotationAcceleration float32
}

func (b *Blob3D) SessionID() uint32 { return b.sessionID }
func (b *Blob3D) Kind() Kind        { return KindBlob3D }

func (b *Blob3D) Apply(args []float32) error {
	if len(args) != 18 {
		return &ErrArgCount{Kind: KindBlob3D, Expected: 18, Got: len(args)}
	}
	b.Position = [3]float32{args[0], args[1], args[2]}
	b.Angle = [3]float32{args[3], args[4], args[5]}
	b.Dimension = [3]float32{args[6], args[7], args[8]}
	b.Volume = args[9]
	b.Velocity = [3]float32{args[10], args[11], args[12]}
	b.VelocityRotation = [3]float32{args[13], args[14], args[15]}
	b.MotionAcceleration = args[16]
	b.RotationAcceleration = args[17]
	return nil
}

func (b *Blob3D) SetArgs() []float32 {
	return []float32{
		b.Position[0], b.Position[1], b.Position[2],
		b.Angle[0], b.Angle[1], b.Angle[2],
		b.Dimension[0], b.Dimension[1], b.Dimension[2],
		b.Volume,
		b.Velocity[0], b.Velocity[1], b.Velocity[2],
		b.VelocityRotation[0], b.VelocityRotation[1], b.VelocityRotation[2],
		b.MotionAcceleration, b.RotationAcceleration,
	}
}
