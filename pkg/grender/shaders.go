package grender

// GLSL sources for hosts that render the quad on actual hardware. The
// fragment shader is the same math as ShadePixel plus the texcoord
// clamp-to-black and the grid overlay; keep the two in sync.

const VertexShaderSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec2 aTex;
out vec2 TexCoord;

uniform mat3 transform;  // 2D view transform: zoom, pan, rotation

void main(){
    vec3 pos = transform * vec3(aPos, 1.0);
    gl_Position = vec4(pos.xy, 0.0, 1.0);
    TexCoord = aTex;
}
`

const FragmentShaderSource = `
#version 330 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D tex;   // ACEScg working space, half float
uniform float exposure;  // stops
uniform vec3 wb;
uniform float contrast;
uniform bool showGrid;

const float pivot = 0.18;  // scene-linear mid grey

// ACEScg -> linear sRGB (AP1 -> AP0 -> XYZ -> Rec.709, precomposed).
// Column-major, transpose of the row-major Go constant.
uniform mat3 acescgToSRGB;

float acesFilm(float x){
    const float a = 2.51, b = 0.03, c = 2.43, d = 0.59, e = 0.14;
    return clamp((x*(a*x+b))/(x*(c*x+d)+e), 0.0, 1.0);
}

float srgbEncode(float f){
    return f <= 0.0031308 ? 12.92*f : 1.055*pow(f, 1.0/2.4) - 0.055;
}

void main(){
    // Outside the texture: opaque black, never edge streaks
    if (TexCoord.x < 0.0 || TexCoord.x > 1.0 || TexCoord.y < 0.0 || TexCoord.y > 1.0) {
        FragColor = vec4(0.0, 0.0, 0.0, 1.0);
        return;
    }

    vec3 color = texture(tex, clamp(TexCoord, 0.0, 1.0)).rgb;
    color *= wb;
    color *= pow(2.0, exposure);
    color = (color - pivot)*contrast + pivot;
    color = max(color, 0.0);             // tone curve needs non-negative input
    color = acescgToSRGB * color;
    color = vec3(acesFilm(color.r), acesFilm(color.g), acesFilm(color.b));
    color = vec3(srgbEncode(color.r), srgbEncode(color.g), srgbEncode(color.b));

    if(showGrid){
        float gx = abs(fract(TexCoord.x*3.0-0.5)-0.5)*6.0;
        float gy = abs(fract(TexCoord.y*3.0-0.5)-0.5)*6.0;
        if(gx < 0.02 || gy < 0.02) color = vec3(1.0);
    }

    FragColor = vec4(color, 1.0);
}
`
