package profile

// Object2D is the 2D object profile variant.
//
// set argument order: i x y a Vx Vy Va m r
type Object2D struct {
	sessionID            uint32
	ClassID              int32
	Position             [2]float32
	Angle                float32
	Velocity             [2]float32
	VelocityRotation     float32
	MotionAcceleration   float32
	RotationAcceleration float32
}

func (o *Object2D) SessionID() uint32 { return o.sessionID }
func (o *Object2D) Kind() Kind        { return KindObject2D }

func (o *Object2D) Apply(args []float32) error {
	if len(args) != 9 {
		return &ErrArgCount{Kind: KindObject2D, Expected: 9, Got: len(args)}
	}
	o.ClassID = int32(args[0])
	o.Position = [2]float32{args[1], args[2]}
	o.Angle = args[3]
	o.Velocity = [2]float32{args[4], args[5]}
	o.VelocityRotation = args[6]
	o.MotionAcceleration = args[7]
	o.RotationAcceleration = args[8]
	return nil
}

// ClassIDArg returns class_id for wire encoding as an OSC int32, per
// the profile.ClassIDProvider contract.
func (o *Object2D) ClassIDArg() int32 { return o.ClassID }

func (o *Object2D) SetArgs() []float32 {
	return []float32{
		o.Position[0], o.Position[1], o.Angle,
		o.Velocity[0], o.Velocity[1], o.VelocityRotation,
		o.MotionAcceleration, o.RotationAcceleration,
	}
}

// Object25D is the 2.5D object profile variant.
//
// set argument order: i x y z a Vx Vy Vz Va m r
type Object25D struct {
	sessionID            uint32
	ClassID              int32
	Position             [3]float32
	Angle                float32
	Velocity             [3]float32
	VelocityRotation     float32
	MotionAcceleration   float32
	RotationAcceleration float32
}

func (o *Object25D) SessionID() uint32 { return o.sessionID }
func (o *Object25D) Kind() Kind        { return KindObject25D }

func (o *Object25D) Apply(args []float32) error {
	if len(args) != 11 {
		return &ErrArgCount{Kind: KindObject25D, Expected: 11, Got: len(args)}
	}
	o.ClassID = int32(args[0])
	o.Position = [3]float32{args[1], args[2], args[3]}
	o.Angle = args[4]
	o.Velocity = [3]float32{args[5], args[6], args[7]}
	o.VelocityRotation = args[8]
	o.MotionAcceleration = args[9]
	o.RotationAcceleration = args[10]
	return nil
}

// ClassIDArg returns class_id for wire encoding as an OSC int32, per
// the profile.ClassIDProvider contract.
func (o *Object25D) ClassIDArg() int32 { return o.ClassID }

func (o *Object25D) SetArgs() []float32 {
	return []float32{
		o.Position[0], o.Position[1], o.Position[2], o.Angle,
		o.Velocity[0], o.Velocity[1], o.Velocity[2], o.VelocityRotation,
		o.MotionAcceleration, o.RotationAcceleration,
	}
}

// Object3D is the 3D object profile variant, whose angle, velocity, and
// velocity_rotation attributes are each 3-vectors (a,b,c axes) rather than
// the single scalar angle of the 2D/2.5D variants.
//
// set argument order: i x y z a b c Vx Vy Vz Va Vb Vc m r
type Object3D struct {
	sessionID            uint32
	ClassID              int32
	Position             [3]float32
	Angle                [3]float32
	Velocity             [3]float32
	VelocityRotation     [3]float32
	MotionAcceleration   float32
	RotationAcceleration float32
}

func (o *Object3D) SessionID() uint32 { return o.sessionID }
func (o *Object3D) Kind() Kind        { return KindObject3D }

func (o *Object3D) Apply(args []float32) error {
	if len(args) != 15 {
		return &ErrArgCount{Kind: KindObject3D, Expected: 15, Got: len(args)}
	}
	o.ClassID = int32(args[0])
	o.Position = [3]float32{args[1], args[2], args[3]}
	o.Angle = [3]float32{args[4], args[5], args[6]}
	o.Velocity = [3]float32{args[7], args[8], args[9]}
	o.VelocityRotation = [3]float32{args[10], args[11], args[12]}
	o.MotionAcceleration = args[13]
	o.RotationAcceleration = args[14]
	return nil
}

// ClassIDArg returns class_id for wire encoding as an OSC int32, per
// the profile.ClassIDProvider contract.
func (o *Object3D) ClassIDArg() int32 { return o.ClassID }

func (o *Object3D) SetArgs() []float32 {
	return []float32{
		o.Position[0], o.Position[1], o.Position[2],
		o.Angle[0], o.Angle[1], o.Angle[2],
		o.Velocity[0], o.Velocity[1], o.Velocity[2],
		o.VelocityRotation[0], o.VelocityRotation[1], o.VelocityRotation[2],
		o.MotionAcceleration, o.RotationAcceleration,
	}
}
